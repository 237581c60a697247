package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusly/course-services/walletgateway/internal/constants"
	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/campusly/course-services/walletgateway/pkg/mq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentSettledCommand struct {
	UserID     string          `json:"user_id"`
	PaymentID  string          `json:"payment_id"`
	CourseID   string          `json:"course_id"`
	CourseName string          `json:"course_name"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

type PaymentFailedCommand struct {
	UserID    string          `json:"user_id"`
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
}

// SettlementService reacts to payment-gateway callbacks: a settled payment
// earns the buyer cashback, a failed payment restores the tentatively
// debited funds. Returned errors are wrapped with mq.Temporary when the
// delivery should be requeued; a nil return dequeues it.
type SettlementService interface {
	HandleSettled(ctx context.Context, cmd PaymentSettledCommand) error
	HandleFailed(ctx context.Context, cmd PaymentFailedCommand) error
}

type settlement struct {
	ledger  LedgerService
	catalog catalog.Client
	logger  *zap.Logger
}

func NewSettlementService(ledger LedgerService, catalog catalog.Client, logger *zap.Logger) SettlementService {
	return &settlement{ledger: ledger, catalog: catalog, logger: logger}
}

func (s *settlement) HandleSettled(ctx context.Context, cmd PaymentSettledCommand) error {
	s.logger.Info("Processing settled payment",
		zap.String("payment_id", cmd.PaymentID),
		zap.String("user_id", cmd.UserID),
		zap.String("course_id", cmd.CourseID),
		zap.String("amount_paid", cmd.AmountPaid.String()))

	cfg, err := s.catalog.GetCashbackConfig(ctx, cmd.CourseID)
	if err != nil {
		if errors.Is(err, catalog.ErrCourseNotFound) {
			s.logger.Warn("Course missing from catalog, no cashback applied",
				zap.String("course_id", cmd.CourseID),
				zap.String("payment_id", cmd.PaymentID))
			return nil
		}

		s.logger.Error("Catalog lookup failed",
			zap.String("course_id", cmd.CourseID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	amount := CalculateCashback(model.CashbackConfig{
		Type:  model.CashbackType(cfg.Type),
		Value: cfg.Value,
	}, cmd.AmountPaid)

	if amount.Sign() <= 0 {
		s.logger.Debug("No cashback due",
			zap.String("payment_id", cmd.PaymentID),
			zap.String("cashback_type", cfg.Type))
		return nil
	}

	creditCmd := CreditCommand{
		UserID:           cmd.UserID,
		Amount:           amount,
		RelatedPaymentID: cmd.PaymentID,
		Reason:           fmt.Sprintf("Cashback for course: %s", cmd.CourseName),
	}

	if _, err := s.ledger.CreditCashback(ctx, creditCmd); err != nil {
		return s.mapLedgerError(err, cmd.PaymentID)
	}

	s.logger.Info("Cashback settled",
		zap.String("payment_id", cmd.PaymentID),
		zap.String("amount", amount.String()))

	return nil
}

func (s *settlement) HandleFailed(ctx context.Context, cmd PaymentFailedCommand) error {
	s.logger.Info("Processing failed payment",
		zap.String("payment_id", cmd.PaymentID),
		zap.String("user_id", cmd.UserID),
		zap.String("amount", cmd.Amount.String()))

	refundCmd := CreditCommand{
		UserID:           cmd.UserID,
		Amount:           cmd.Amount,
		RelatedPaymentID: cmd.PaymentID,
		Reason:           fmt.Sprintf("Refund for failed payment: %s", cmd.Reason),
	}

	if _, err := s.ledger.RefundFailedPayment(ctx, refundCmd); err != nil {
		return s.mapLedgerError(err, cmd.PaymentID)
	}

	s.logger.Info("Failed payment refunded",
		zap.String("payment_id", cmd.PaymentID))

	return nil
}

func (s *settlement) mapLedgerError(err error, paymentID string) error {
	var serviceErr Error
	if errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeWalletNotFound {
		s.logger.Error("Wallet missing for settlement, dropping delivery",
			zap.String("payment_id", paymentID),
			zap.Error(err))
		return nil
	}

	s.logger.Error("Ledger update failed, requeueing delivery",
		zap.String("payment_id", paymentID),
		zap.Error(err))
	return mq.Temporary(err)
}
