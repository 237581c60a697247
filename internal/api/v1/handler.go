package v1

import (
	"context"
	"time"

	"github.com/campusly/course-services/walletgateway/internal/api/contract"
	"github.com/campusly/course-services/walletgateway/internal/api/validator"
	"github.com/campusly/course-services/walletgateway/internal/constants"
	"github.com/campusly/course-services/walletgateway/internal/model"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	ledger     service.LedgerService
	XValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, ledger service.LedgerService, XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:     logger,
		ledger:     ledger,
		XValidator: XValidator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateWallet(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest CreateWalletRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	initial := decimal.Zero
	if handlerRequest.InitialBalance != "" {
		initial, _ = decimal.NewFromString(handlerRequest.InitialBalance)
	}

	cmd := service.CreateWalletCommand{
		UserID:         handlerRequest.UserID,
		InitialBalance: initial,
	}

	result, err := h.ledger.CreateWallet(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.logger.Info("Wallet created successfully",
		zap.String("user_id", cmd.UserID),
		zap.Duration("duration", time.Since(start)),
	)

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: constants.WalletCreated, TrackID: uuid.NewString(), Result: result})
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	var handlerRequest GetBalanceRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	wallet, err := h.ledger.GetBalance(c.UserContext(), handlerRequest.UserID)
	if err != nil {
		h.logger.Error("Error getting wallet balance", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: "wallet balance retrieved successfully", TrackID: uuid.NewString(), Result: wallet})
}

func (h *Handler) ValidateBalance(c *fiber.Ctx) error {
	var handlerRequest ValidateBalanceRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, _ := decimal.NewFromString(handlerRequest.Amount)

	sufficient, err := h.ledger.ValidateSufficientBalance(c.UserContext(), handlerRequest.UserID, amount)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		TrackID: uuid.NewString(), Result: fiber.Map{"sufficient": sufficient}})
}

func (h *Handler) Debit(c *fiber.Ctx) error {
	var handlerRequest DebitRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, _ := decimal.NewFromString(handlerRequest.Amount)

	cmd := service.DebitCommand{
		UserID:           handlerRequest.UserID,
		Amount:           amount,
		RelatedPaymentID: handlerRequest.RelatedPaymentID,
		Reason:           handlerRequest.Reason,
	}

	result, err := h.ledger.Debit(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error debiting wallet", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: constants.WalletDebited, TrackID: uuid.NewString(), Result: result})
}

func (h *Handler) CreditCashback(c *fiber.Ctx) error {
	return h.credit(c, h.ledger.CreditCashback)
}

func (h *Handler) RefundFailedPayment(c *fiber.Ctx) error {
	return h.credit(c, h.ledger.RefundFailedPayment)
}

func (h *Handler) credit(c *fiber.Ctx, apply func(ctx context.Context, cmd service.CreditCommand) (service.EntryResult, error)) error {
	var handlerRequest CreditRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, _ := decimal.NewFromString(handlerRequest.Amount)

	cmd := service.CreditCommand{
		UserID:           handlerRequest.UserID,
		Amount:           amount,
		RelatedPaymentID: handlerRequest.RelatedPaymentID,
		Reason:           handlerRequest.Reason,
	}

	result, err := apply(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error crediting wallet", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: constants.WalletCredited, TrackID: uuid.NewString(), Result: result})
}

func (h *Handler) AdminAdjust(c *fiber.Ctx) error {
	var handlerRequest AdjustRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, _ := decimal.NewFromString(handlerRequest.Amount)

	cmd := service.AdjustCommand{
		UserID:  handlerRequest.UserID,
		Amount:  amount,
		Reason:  handlerRequest.Reason,
		AdminID: handlerRequest.AdminID,
	}

	result, err := h.ledger.AdminAdjustBalance(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error adjusting wallet", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: constants.WalletAdjusted, TrackID: uuid.NewString(), Result: result})
}

func (h *Handler) History(c *fiber.Ctx) error {
	var handlerRequest HistoryRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	query := service.HistoryQuery{
		UserID: handlerRequest.UserID,
		Page:   handlerRequest.Page,
		Limit:  handlerRequest.Limit,
	}
	if handlerRequest.Kind != "" {
		kind := model.EntryKind(handlerRequest.Kind)
		query.Kind = &kind
	}

	result, err := h.ledger.GetTransactionHistory(c.UserContext(), query)
	if err != nil {
		h.logger.Error("Error getting transaction history", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success",
		Message: "transaction history retrieved successfully", TrackID: uuid.NewString(), Result: result})
}
