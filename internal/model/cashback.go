package model

import "github.com/shopspring/decimal"

type CashbackType string

const (
	CashbackNone       CashbackType = "NONE"
	CashbackPercentage CashbackType = "PERCENTAGE"
	CashbackFixed      CashbackType = "FIXED"
)

// CashbackConfig is the per-course cashback rule supplied by the pricing
// catalog. Value is a percentage for PERCENTAGE and an absolute amount for
// FIXED; it is ignored for NONE.
type CashbackConfig struct {
	Type  CashbackType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}
