package mocks

import (
	"context"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type LedgerService struct {
	mock.Mock
}

func (m *LedgerService) CreateWallet(ctx context.Context, cmd service.CreateWalletCommand) (service.WalletResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WalletResult), args.Error(1)
}

func (m *LedgerService) GetBalance(ctx context.Context, userID string) (model.Wallet, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Wallet), args.Error(1)
}

func (m *LedgerService) ValidateSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *LedgerService) Debit(ctx context.Context, cmd service.DebitCommand) (service.EntryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.EntryResult), args.Error(1)
}

func (m *LedgerService) CreditCashback(ctx context.Context, cmd service.CreditCommand) (service.EntryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.EntryResult), args.Error(1)
}

func (m *LedgerService) RefundFailedPayment(ctx context.Context, cmd service.CreditCommand) (service.EntryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.EntryResult), args.Error(1)
}

func (m *LedgerService) AdminAdjustBalance(ctx context.Context, cmd service.AdjustCommand) (service.EntryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.EntryResult), args.Error(1)
}

func (m *LedgerService) GetTransactionHistory(ctx context.Context, query service.HistoryQuery) (service.HistoryResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.HistoryResult), args.Error(1)
}
