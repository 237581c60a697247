package service

import (
	"time"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/shopspring/decimal"
)

type CreateWalletCommand struct {
	UserID         string
	InitialBalance decimal.Decimal
}

type DebitCommand struct {
	UserID           string
	Amount           decimal.Decimal
	RelatedPaymentID string
	Reason           string
}

type CreditCommand struct {
	UserID           string
	Amount           decimal.Decimal
	RelatedPaymentID string
	Reason           string
}

type AdjustCommand struct {
	UserID  string
	Amount  decimal.Decimal
	Reason  string
	AdminID string
}

type HistoryQuery struct {
	UserID string
	Kind   *model.EntryKind
	Page   int
	Limit  int
}

type WalletResult struct {
	Wallet    model.Wallet `json:"wallet"`
	EntryID   int64        `json:"entry_id,omitempty"`
	EntryTime time.Time    `json:"entry_time,omitempty"`
}

type EntryResult struct {
	Wallet    model.Wallet `json:"wallet"`
	EntryID   int64        `json:"entry_id,omitempty"`
	EntryTime time.Time    `json:"entry_time,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

type HistoryResult struct {
	Entries    []model.LedgerEntry `json:"entries"`
	Pagination Pagination          `json:"pagination"`
}
