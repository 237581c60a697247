package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusly/course-services/walletgateway/internal/constants"
	"github.com/campusly/course-services/walletgateway/internal/mocks"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func isTemporaryError(err error) bool {
	type temporary interface {
		Temporary() bool
	}
	te, ok := err.(temporary)
	return ok && te.Temporary()
}

func TestSettlement_HandleSettled(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.PaymentSettledCommand{
		UserID:     "user-1",
		PaymentID:  "pay-1",
		CourseID:   "course-1",
		CourseName: "Distributed systems",
		AmountPaid: decimal.NewFromInt(300),
	}

	t.Run("credits percentage cashback", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{Type: "PERCENTAGE", Value: decimal.NewFromInt(10)}, nil)

		mockLedger.On("CreditCashback", context.Background(),
			mock.MatchedBy(func(credit service.CreditCommand) bool {
				return credit.UserID == "user-1" &&
					credit.Amount.Equal(decimal.NewFromInt(30)) &&
					credit.RelatedPaymentID == "pay-1"
			})).Return(service.EntryResult{}, nil)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.NoError(t, err)
		mockCatalog.AssertExpectations(t)
		mockLedger.AssertExpectations(t)
	})

	t.Run("dequeue when course has no cashback", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{Type: "NONE"}, nil)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.NoError(t, err)
		mockLedger.AssertNotCalled(t, "CreditCashback")
	})

	t.Run("dequeue when course missing from catalog", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{}, catalog.ErrCourseNotFound)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.NoError(t, err)
		mockLedger.AssertNotCalled(t, "CreditCashback")
	})

	t.Run("requeue when catalog unavailable", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{}, catalog.ErrServerError)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.Error(t, err)
		assert.True(t, isTemporaryError(err))
		mockLedger.AssertNotCalled(t, "CreditCashback")
	})

	t.Run("dequeue when wallet is missing", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{Type: "FIXED", Value: decimal.NewFromInt(20)}, nil)

		walletErr := service.NewServiceError(constants.ErrCodeWalletNotFound, errors.New("wallet not found"))
		mockLedger.On("CreditCashback", context.Background(), mock.AnythingOfType("service.CreditCommand")).
			Return(service.EntryResult{}, walletErr)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.NoError(t, err)
		mockLedger.AssertExpectations(t)
	})

	t.Run("requeue when ledger update fails", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockCatalog.On("GetCashbackConfig", context.Background(), "course-1").
			Return(catalog.CashbackConfig{Type: "PERCENTAGE", Value: decimal.NewFromInt(10)}, nil)

		dbErr := service.NewServiceError(constants.ErrCodeOperationFailed, errors.New("database connection failed"))
		mockLedger.On("CreditCashback", context.Background(), mock.AnythingOfType("service.CreditCommand")).
			Return(service.EntryResult{}, dbErr)

		err := svc.HandleSettled(context.Background(), cmd)

		assert.Error(t, err)
		assert.True(t, isTemporaryError(err))
	})
}

func TestSettlement_HandleFailed(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.PaymentFailedCommand{
		UserID:    "user-1",
		PaymentID: "pay-2",
		Amount:    decimal.NewFromInt(150),
		Reason:    "provider rejected",
	}

	t.Run("refunds the debited amount", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		mockLedger.On("RefundFailedPayment", context.Background(),
			mock.MatchedBy(func(refund service.CreditCommand) bool {
				return refund.UserID == "user-1" &&
					refund.Amount.Equal(decimal.NewFromInt(150)) &&
					refund.RelatedPaymentID == "pay-2"
			})).Return(service.EntryResult{}, nil)

		err := svc.HandleFailed(context.Background(), cmd)

		assert.NoError(t, err)
		mockLedger.AssertExpectations(t)
		mockCatalog.AssertNotCalled(t, "GetCashbackConfig")
	})

	t.Run("dequeue when wallet is missing", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		walletErr := service.NewServiceError(constants.ErrCodeWalletNotFound, errors.New("wallet not found"))
		mockLedger.On("RefundFailedPayment", context.Background(), mock.AnythingOfType("service.CreditCommand")).
			Return(service.EntryResult{}, walletErr)

		err := svc.HandleFailed(context.Background(), cmd)

		assert.NoError(t, err)
	})

	t.Run("requeue when ledger update fails", func(t *testing.T) {
		mockCatalog := &mocks.CatalogClient{}
		mockLedger := &mocks.LedgerService{}

		svc := service.NewSettlementService(mockLedger, mockCatalog, logger)

		dbErr := service.NewServiceError(constants.ErrCodeOperationFailed, errors.New("database connection failed"))
		mockLedger.On("RefundFailedPayment", context.Background(), mock.AnythingOfType("service.CreditCommand")).
			Return(service.EntryResult{}, dbErr)

		err := svc.HandleFailed(context.Background(), cmd)

		assert.Error(t, err)
		assert.True(t, isTemporaryError(err))
	})
}
