package mocks

import (
	"context"

	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/stretchr/testify/mock"
)

type CatalogClient struct {
	mock.Mock
}

func (m *CatalogClient) GetCashbackConfig(ctx context.Context, courseID string) (catalog.CashbackConfig, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(catalog.CashbackConfig), args.Error(1)
}
