package service_test

import (
	"testing"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCashback(t *testing.T) {
	tests := []struct {
		name        string
		cfg         model.CashbackConfig
		finalAmount string
		expected    string
	}{
		{
			name:        "percentage of final amount",
			cfg:         model.CashbackConfig{Type: model.CashbackPercentage, Value: decimal.NewFromInt(10)},
			finalAmount: "250",
			expected:    "25",
		},
		{
			name:        "percentage rounds to two decimals",
			cfg:         model.CashbackConfig{Type: model.CashbackPercentage, Value: decimal.NewFromFloat(7.5)},
			finalAmount: "33.33",
			expected:    "2.5",
		},
		{
			name:        "result carries exactly two decimal places",
			cfg:         model.CashbackConfig{Type: model.CashbackPercentage, Value: decimal.NewFromInt(10)},
			finalAmount: "99.995",
			expected:    "10",
		},
		{
			name:        "percentage rounds half up",
			cfg:         model.CashbackConfig{Type: model.CashbackPercentage, Value: decimal.NewFromInt(15)},
			finalAmount: "0.17",
			expected:    "0.03",
		},
		{
			name:        "fixed ignores final amount",
			cfg:         model.CashbackConfig{Type: model.CashbackFixed, Value: decimal.NewFromInt(50)},
			finalAmount: "9.99",
			expected:    "50",
		},
		{
			name:        "none yields zero",
			cfg:         model.CashbackConfig{Type: model.CashbackNone, Value: decimal.NewFromInt(10)},
			finalAmount: "100",
			expected:    "0",
		},
		{
			name:        "zero final amount yields zero even for fixed",
			cfg:         model.CashbackConfig{Type: model.CashbackFixed, Value: decimal.NewFromInt(50)},
			finalAmount: "0",
			expected:    "0",
		},
		{
			name:        "negative final amount yields zero",
			cfg:         model.CashbackConfig{Type: model.CashbackPercentage, Value: decimal.NewFromInt(10)},
			finalAmount: "-25",
			expected:    "0",
		},
		{
			name:        "unknown type yields zero",
			cfg:         model.CashbackConfig{Type: model.CashbackType("TIERED"), Value: decimal.NewFromInt(10)},
			finalAmount: "100",
			expected:    "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			finalAmount, err := decimal.NewFromString(tc.finalAmount)
			assert.NoError(t, err)

			got := service.CalculateCashback(tc.cfg, finalAmount)

			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, got.String())
		})
	}
}
