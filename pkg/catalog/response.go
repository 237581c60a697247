package catalog

import "github.com/shopspring/decimal"

// CashbackConfig is the cashback rule a course was published with.
// Type is one of NONE, PERCENTAGE, FIXED.
type CashbackConfig struct {
	Type  string          `json:"cashback_type"`
	Value decimal.Decimal `json:"cashback_value"`
}

type courseResponse struct {
	Code   string `json:"code"`
	Result struct {
		CourseID string         `json:"course_id"`
		Title    string         `json:"title"`
		Cashback CashbackConfig `json:"cashback"`
	} `json:"result"`
}
