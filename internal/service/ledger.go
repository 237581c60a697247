package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campusly/course-services/walletgateway/internal/constants"
	"github.com/campusly/course-services/walletgateway/internal/metrics"
	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type LedgerService interface {
	CreateWallet(ctx context.Context, cmd CreateWalletCommand) (WalletResult, error)
	GetBalance(ctx context.Context, userID string) (model.Wallet, error)
	// ValidateSufficientBalance is a convenience check only. It is not atomic
	// with a later Debit; callers that need atomicity must rely on Debit's
	// internal check.
	ValidateSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error)
	Debit(ctx context.Context, cmd DebitCommand) (EntryResult, error)
	CreditCashback(ctx context.Context, cmd CreditCommand) (EntryResult, error)
	RefundFailedPayment(ctx context.Context, cmd CreditCommand) (EntryResult, error)
	AdminAdjustBalance(ctx context.Context, cmd AdjustCommand) (EntryResult, error)
	GetTransactionHistory(ctx context.Context, query HistoryQuery) (HistoryResult, error)
}

type ledgerService struct {
	txManager  repository.TxManager
	walletRepo repository.WalletRepository
	entryRepo  repository.LedgerEntryRepository
	log        *zap.Logger
	metrics    *metrics.Metrics
}

func NewLedgerService(txManager repository.TxManager, walletRepo repository.WalletRepository,
	entryRepo repository.LedgerEntryRepository, log *zap.Logger, metrics *metrics.Metrics) LedgerService {
	return &ledgerService{txManager: txManager, walletRepo: walletRepo, entryRepo: entryRepo,
		log: log, metrics: metrics}
}

func (s *ledgerService) CreateWallet(ctx context.Context, cmd CreateWalletCommand) (WalletResult, error) {
	if cmd.InitialBalance.Sign() < 0 {
		return WalletResult{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	w := model.Wallet{
		UserID:    cmd.UserID,
		Balance:   cmd.InitialBalance,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.walletRepo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, repository.ErrWalletExisted) {
			return WalletResult{}, NewServiceError(constants.ErrCodeWalletExisted, err)
		}

		s.log.Error("error create wallet", zap.String("user_id", cmd.UserID), zap.Error(err))
		return WalletResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordWalletCreated()
	s.log.Info("Wallet created",
		zap.String("user_id", cmd.UserID),
		zap.String("initial_balance", cmd.InitialBalance.String()),
	)

	return WalletResult{Wallet: w}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID string) (model.Wallet, error) {
	start := time.Now()

	w, err := s.walletRepo.FindByUserID(userID)
	duration := time.Since(start)

	if err != nil {
		s.metrics.RecordDBQuery("select", "wallets", "error", duration)
		if errors.Is(err, repository.ErrWalletNotFound) {
			return model.Wallet{}, NewServiceError(constants.ErrCodeWalletNotFound, err)
		}

		s.log.Error("Failed to get wallet balance",
			zap.String("user_id", userID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return model.Wallet{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordDBQuery("select", "wallets", "success", duration)
	s.metrics.RecordBalanceRetrieval("success")

	return w, nil
}

func (s *ledgerService) ValidateSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	w, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}

	return w.Balance.GreaterThanOrEqual(amount), nil
}

func (s *ledgerService) Debit(ctx context.Context, cmd DebitCommand) (EntryResult, error) {
	if cmd.Amount.Sign() <= 0 {
		return EntryResult{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	var result EntryResult
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.FindByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return NewServiceError(constants.ErrCodeWalletNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if w.Balance.LessThan(cmd.Amount) {
			s.metrics.RecordRejection(string(model.EntryKindPurchaseDebit), constants.ErrCodeInsufficientBalance)
			return NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientBalance)
		}

		entry := &model.LedgerEntry{
			UserID:           cmd.UserID,
			Kind:             model.EntryKindPurchaseDebit,
			Amount:           cmd.Amount.Neg(),
			BalanceBefore:    w.Balance,
			BalanceAfter:     w.Balance.Sub(cmd.Amount),
			Description:      cmd.Reason,
			RelatedPaymentID: paymentRef(cmd.RelatedPaymentID),
			CreatedAt:        time.Now(),
		}

		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return err
		}

		if err := s.walletRepo.UpdateBalance(ctx, w.UserID, entry.BalanceAfter); err != nil {
			s.log.Error("error update wallet balance", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		w.Balance = entry.BalanceAfter
		w.UpdatedAt = time.Now()
		result = EntryResult{Wallet: w, EntryID: entry.ID, EntryTime: entry.CreatedAt}
		return nil
	})

	if err == nil {
		s.metrics.RecordEntryCreated(string(model.EntryKindPurchaseDebit))
		s.log.Info("Wallet debited",
			zap.String("user_id", cmd.UserID),
			zap.String("amount", cmd.Amount.String()),
			zap.String("payment_id", cmd.RelatedPaymentID),
		)
		return result, nil
	}

	if !errors.Is(err, repository.ErrEntryExisted) {
		return EntryResult{}, err
	}

	// A debit for this payment was already committed; replay the original
	// outcome instead of charging twice.
	return s.replayExistingEntry(ctx, model.EntryKindPurchaseDebit, cmd.UserID, cmd.RelatedPaymentID)
}

func (s *ledgerService) CreditCashback(ctx context.Context, cmd CreditCommand) (EntryResult, error) {
	return s.credit(ctx, model.EntryKindCashbackCredit, cmd)
}

func (s *ledgerService) RefundFailedPayment(ctx context.Context, cmd CreditCommand) (EntryResult, error) {
	return s.credit(ctx, model.EntryKindRefundCredit, cmd)
}

// credit applies an idempotent balance increase. Zero and negative amounts
// are silent no-ops, as is a second delivery for the same payment id —
// payment gateways redeliver settlement notifications.
func (s *ledgerService) credit(ctx context.Context, kind model.EntryKind, cmd CreditCommand) (EntryResult, error) {
	if cmd.Amount.Sign() <= 0 {
		s.metrics.RecordIdempotentNoop(string(kind))
		w, err := s.walletRepo.FindByUserID(cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return EntryResult{}, NewServiceError(constants.ErrCodeWalletNotFound, err)
			}
			return EntryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return EntryResult{Wallet: w}, nil
	}

	var result EntryResult
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.FindByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return NewServiceError(constants.ErrCodeWalletNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		metadata, _ := json.Marshal(map[string]string{"payment_id": cmd.RelatedPaymentID})

		entry := &model.LedgerEntry{
			UserID:           cmd.UserID,
			Kind:             kind,
			Amount:           cmd.Amount,
			BalanceBefore:    w.Balance,
			BalanceAfter:     w.Balance.Add(cmd.Amount),
			Description:      cmd.Reason,
			RelatedPaymentID: paymentRef(cmd.RelatedPaymentID),
			Metadata:         metadata,
			CreatedAt:        time.Now(),
		}

		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return err
		}

		if err := s.walletRepo.UpdateBalance(ctx, w.UserID, entry.BalanceAfter); err != nil {
			s.log.Error("error update wallet balance", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		w.Balance = entry.BalanceAfter
		w.UpdatedAt = time.Now()
		result = EntryResult{Wallet: w, EntryID: entry.ID, EntryTime: entry.CreatedAt}
		return nil
	})

	if err == nil {
		s.metrics.RecordEntryCreated(string(kind))
		s.log.Info("Wallet credited",
			zap.String("kind", string(kind)),
			zap.String("user_id", cmd.UserID),
			zap.String("amount", cmd.Amount.String()),
			zap.String("payment_id", cmd.RelatedPaymentID),
		)
		return result, nil
	}

	if !errors.Is(err, repository.ErrEntryExisted) {
		return EntryResult{}, err
	}

	s.metrics.RecordIdempotentNoop(string(kind))
	s.log.Info("Duplicate settlement delivery, credit already applied",
		zap.String("kind", string(kind)),
		zap.String("payment_id", cmd.RelatedPaymentID))

	return s.replayExistingEntry(ctx, kind, cmd.UserID, cmd.RelatedPaymentID)
}

func (s *ledgerService) AdminAdjustBalance(ctx context.Context, cmd AdjustCommand) (EntryResult, error) {
	if cmd.Amount.Sign() == 0 {
		return EntryResult{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	if cmd.Reason == "" {
		return EntryResult{}, NewServiceError(constants.ErrCodeInvalidReason, ErrInvalidReason)
	}

	kind := model.EntryKindAdminCredit
	if cmd.Amount.Sign() < 0 {
		kind = model.EntryKindAdminDebit
	}

	var result EntryResult
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.FindByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return NewServiceError(constants.ErrCodeWalletNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		after := w.Balance.Add(cmd.Amount)
		if after.Sign() < 0 {
			s.metrics.RecordRejection(string(kind), constants.ErrCodeInvalidAdjustment)
			return NewServiceError(constants.ErrCodeInvalidAdjustment, ErrInvalidAdjustment)
		}

		adminID := cmd.AdminID
		metadata, _ := json.Marshal(map[string]string{"admin_id": cmd.AdminID, "reason": cmd.Reason})

		entry := &model.LedgerEntry{
			UserID:        cmd.UserID,
			Kind:          kind,
			Amount:        cmd.Amount,
			BalanceBefore: w.Balance,
			BalanceAfter:  after,
			Description:   cmd.Reason,
			AdminID:       &adminID,
			Metadata:      metadata,
			CreatedAt:     time.Now(),
		}

		if err := s.entryRepo.Create(ctx, entry); err != nil {
			s.log.Error("error create ledger entry", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.walletRepo.UpdateBalance(ctx, w.UserID, after); err != nil {
			s.log.Error("error update wallet balance", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		w.Balance = after
		w.UpdatedAt = time.Now()
		result = EntryResult{Wallet: w, EntryID: entry.ID, EntryTime: entry.CreatedAt}
		return nil
	})

	if err != nil {
		return EntryResult{}, err
	}

	s.metrics.RecordEntryCreated(string(kind))
	s.log.Info("Wallet adjusted by admin",
		zap.String("user_id", cmd.UserID),
		zap.String("admin_id", cmd.AdminID),
		zap.String("amount", cmd.Amount.String()),
		zap.String("reason", cmd.Reason),
	)

	return result, nil
}

func (s *ledgerService) GetTransactionHistory(ctx context.Context, query HistoryQuery) (HistoryResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultHistoryLimit
	}
	if query.Limit > maxHistoryLimit {
		query.Limit = maxHistoryLimit
	}

	if _, err := s.GetBalance(ctx, query.UserID); err != nil {
		return HistoryResult{}, err
	}

	entries, total, err := s.entryRepo.ListByUser(query.UserID, repository.EntryListQuery{
		Kind:  query.Kind,
		Page:  query.Page,
		Limit: query.Limit,
	})
	if err != nil {
		s.log.Error("error list ledger entries", zap.String("user_id", query.UserID), zap.Error(err))
		return HistoryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	totalPages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		totalPages++
	}

	return HistoryResult{
		Entries: entries,
		Pagination: Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// replayExistingEntry returns the committed entry for an idempotency-key hit
// so duplicate deliveries observe the same response as the original call.
func (s *ledgerService) replayExistingEntry(ctx context.Context, kind model.EntryKind, userID, paymentID string) (EntryResult, error) {
	entry, err := s.entryRepo.FindByPaymentID(kind, paymentID)
	if err != nil {
		s.log.Error("error get entry by payment id",
			zap.String("kind", string(kind)),
			zap.String("payment_id", paymentID),
			zap.Error(err))
		return EntryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	w, err := s.walletRepo.FindByUserID(userID)
	if err != nil {
		return EntryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return EntryResult{Wallet: w, EntryID: entry.ID, EntryTime: entry.CreatedAt}, nil
}

func paymentRef(paymentID string) *string {
	if paymentID == "" {
		return nil
	}
	return &paymentID
}
