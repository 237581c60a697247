package v1

type CreateWalletRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid4"`
	InitialBalance string `json:"initial_balance" validate:"omitempty,amount"`
}

type GetBalanceRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

type ValidateBalanceRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Amount string `json:"amount" validate:"required,amount"`
}

type DebitRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid4"`
	Amount           string `json:"amount" validate:"required,amount"`
	RelatedPaymentID string `json:"related_payment_id" validate:"required"`
	Reason           string `json:"reason" validate:"required"`
}

type CreditRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid4"`
	Amount           string `json:"amount" validate:"required,amount"`
	RelatedPaymentID string `json:"related_payment_id" validate:"required"`
	Reason           string `json:"reason" validate:"required"`
}

type AdjustRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Amount  string `json:"amount" validate:"required,signed_amount"`
	Reason  string `json:"reason" validate:"required"`
	AdminID string `json:"admin_id" validate:"required,uuid4"`
}

type HistoryRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Kind   string `json:"kind" validate:"omitempty,oneof=PURCHASE_DEBIT CASHBACK_CREDIT ADMIN_CREDIT ADMIN_DEBIT REFUND_CREDIT"`
	Page   int    `json:"page" validate:"omitempty,min=1"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}
