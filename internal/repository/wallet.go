package repository

import (
	"context"
	"errors"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrWalletExisted  = errors.New("WALLET_EXISTED")
	ErrWalletNotFound = errors.New("WALLET_NOT_FOUND")
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *model.Wallet) error
	FindByUserID(userID string) (model.Wallet, error)
	// FindByUserIDForUpdate locks the wallet row for the duration of the
	// surrounding transaction. Must be called inside TxManager.WithTx.
	FindByUserIDForUpdate(ctx context.Context, userID string) (model.Wallet, error)
	UpdateBalance(ctx context.Context, userID string, newBalance decimal.Decimal) error
}

type wallet struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &wallet{db: db}
}

func (r *wallet) Create(ctx context.Context, w *model.Wallet) error {
	db := GetTx(ctx, r.db)
	err := db.Create(w).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrWalletExisted
	}

	return err
}

func (r *wallet) FindByUserID(userID string) (model.Wallet, error) {
	var w model.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Wallet{}, ErrWalletNotFound
		}
		return model.Wallet{}, err
	}
	return w, nil
}

func (r *wallet) FindByUserIDForUpdate(ctx context.Context, userID string) (model.Wallet, error) {
	db := GetTx(ctx, r.db)

	var w model.Wallet
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Wallet{}, ErrWalletNotFound
		}
		return model.Wallet{}, err
	}

	return w, nil
}

func (r *wallet) UpdateBalance(ctx context.Context, userID string, newBalance decimal.Decimal) error {
	db := GetTx(ctx, r.db)
	return db.Model(&model.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", newBalance).Error
}
