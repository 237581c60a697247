package service

import (
	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateCashback computes the credit earned for a settled purchase.
// finalAmount must be the post-discount amount actually paid; coupons are
// applied by the caller before this point. The result is rounded to currency
// precision here and nowhere else, so the stored entry and any display of it
// cannot diverge.
func CalculateCashback(cfg model.CashbackConfig, finalAmount decimal.Decimal) decimal.Decimal {
	if finalAmount.Sign() <= 0 {
		return decimal.Zero
	}

	switch cfg.Type {
	case model.CashbackPercentage:
		return finalAmount.Mul(cfg.Value).Div(oneHundred).Round(2)
	case model.CashbackFixed:
		return cfg.Value.Round(2)
	default:
		return decimal.Zero
	}
}
