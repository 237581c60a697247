package mocks

import (
	"context"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type WalletRepository struct {
	mock.Mock
}

func (m *WalletRepository) Create(ctx context.Context, wallet *model.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *WalletRepository) FindByUserID(userID string) (model.Wallet, error) {
	args := m.Called(userID)
	return args.Get(0).(model.Wallet), args.Error(1)
}

func (m *WalletRepository) FindByUserIDForUpdate(ctx context.Context, userID string) (model.Wallet, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Wallet), args.Error(1)
}

func (m *WalletRepository) UpdateBalance(ctx context.Context, userID string, newBalance decimal.Decimal) error {
	args := m.Called(ctx, userID, newBalance)
	return args.Error(0)
}
