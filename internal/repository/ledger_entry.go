package repository

import (
	"context"
	"errors"

	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrEntryExisted = errors.New("ENTRY_EXISTED")

type EntryListQuery struct {
	Kind  *model.EntryKind
	Page  int
	Limit int
}

type LedgerEntryRepository interface {
	// Create appends an entry. Entries are immutable; there is no update or
	// delete. A duplicate (kind, related_payment_id) pair maps to
	// ErrEntryExisted via the unique key.
	Create(ctx context.Context, entry *model.LedgerEntry) error
	FindByPaymentID(kind model.EntryKind, relatedPaymentID string) (*model.LedgerEntry, error)
	ListByUser(userID string, query EntryListQuery) ([]model.LedgerEntry, int64, error)
}

type ledgerEntry struct {
	db *gorm.DB
}

func NewLedgerEntryRepository(db *gorm.DB) LedgerEntryRepository {
	return &ledgerEntry{db: db}
}

func (r *ledgerEntry) Create(ctx context.Context, entry *model.LedgerEntry) error {
	db := GetTx(ctx, r.db)
	err := db.Create(entry).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrEntryExisted
	}

	return err
}

func (r *ledgerEntry) FindByPaymentID(kind model.EntryKind, relatedPaymentID string) (*model.LedgerEntry, error) {
	var entry model.LedgerEntry
	err := r.db.Where("kind = ? AND related_payment_id = ?", kind, relatedPaymentID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (r *ledgerEntry) ListByUser(userID string, query EntryListQuery) ([]model.LedgerEntry, int64, error) {
	db := r.db.Model(&model.LedgerEntry{}).Where("user_id = ?", userID)
	if query.Kind != nil {
		db = db.Where("kind = ?", *query.Kind)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.LedgerEntry
	offset := (query.Page - 1) * query.Limit
	err := db.Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
