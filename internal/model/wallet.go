package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	UserID    string          `gorm:"column:user_id;primaryKey;type:char(36)" json:"user_id"`
	Balance   decimal.Decimal `gorm:"column:balance;type:decimal(20,2);not null;default:0" json:"balance"`
	UpdatedAt time.Time       `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	CreatedAt time.Time       `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}
