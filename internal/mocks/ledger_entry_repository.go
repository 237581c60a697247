package mocks

import (
	"context"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/internal/repository"
	"github.com/stretchr/testify/mock"
)

type LedgerEntryRepository struct {
	mock.Mock
}

func (m *LedgerEntryRepository) Create(ctx context.Context, entry *model.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *LedgerEntryRepository) FindByPaymentID(kind model.EntryKind, relatedPaymentID string) (*model.LedgerEntry, error) {
	args := m.Called(kind, relatedPaymentID)
	return args.Get(0).(*model.LedgerEntry), args.Error(1)
}

func (m *LedgerEntryRepository) ListByUser(userID string, query repository.EntryListQuery) ([]model.LedgerEntry, int64, error) {
	args := m.Called(userID, query)
	return args.Get(0).([]model.LedgerEntry), args.Get(1).(int64), args.Error(2)
}
