package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryKindPurchaseDebit  EntryKind = "PURCHASE_DEBIT"
	EntryKindCashbackCredit EntryKind = "CASHBACK_CREDIT"
	EntryKindAdminCredit    EntryKind = "ADMIN_CREDIT"
	EntryKindAdminDebit     EntryKind = "ADMIN_DEBIT"
	EntryKindRefundCredit   EntryKind = "REFUND_CREDIT"
)

// LedgerEntry is an append-only audit record of one balance change.
// Amount is signed: negative for debits, positive for credits.
// BalanceAfter must always equal BalanceBefore + Amount.
type LedgerEntry struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string          `gorm:"column:user_id;type:char(36);index;not null" json:"user_id"`
	Kind             EntryKind       `gorm:"column:kind;type:varchar(20);index;not null;uniqueIndex:uniq_kind_payment" json:"kind"`
	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	BalanceBefore    decimal.Decimal `gorm:"column:balance_before;type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter     decimal.Decimal `gorm:"column:balance_after;type:decimal(20,2);not null" json:"balance_after"`
	Description      string          `gorm:"column:description;type:varchar(255)" json:"description"`
	RelatedPaymentID *string         `gorm:"column:related_payment_id;type:varchar(120);uniqueIndex:uniq_kind_payment" json:"related_payment_id,omitempty"`
	AdminID          *string         `gorm:"column:admin_id;type:char(36)" json:"admin_id,omitempty"`
	Metadata         json.RawMessage `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
	CreatedAt        time.Time       `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsCredit reports whether the entry increased the balance.
func (e LedgerEntry) IsCredit() bool {
	return e.Amount.Sign() > 0
}
