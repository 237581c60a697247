package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeWalletExisted       = "WALLET_ALREADY_EXISTS"
	ErrCodeWalletNotFound      = "WALLET_NOT_FOUND"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInvalidReason       = "INVALID_REASON"
	ErrCodeInvalidAdjustment   = "INVALID_ADJUSTMENT"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

const (
	ErrMsgWalletExisted       = "wallet already exists"
	ErrMsgWalletNotFound      = "wallet not found"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInvalidAmount       = "amount must be positive"
	ErrMsgInvalidReason       = "reason must not be empty"
	ErrMsgInvalidAdjustment   = "adjustment would drive balance negative"
	ErrMsgOperationFailed     = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeWalletExisted:       ErrMsgWalletExisted,
	ErrCodeWalletNotFound:      ErrMsgWalletNotFound,
	ErrCodeInsufficientBalance: ErrMsgInsufficientBalance,
	ErrCodeInvalidAmount:       ErrMsgInvalidAmount,
	ErrCodeInvalidReason:       ErrMsgInvalidReason,
	ErrCodeInvalidAdjustment:   ErrMsgInvalidAdjustment,
	ErrCodeOperationFailed:     ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}

const (
	WalletCreated  = "wallet created successfully"
	WalletDebited  = "wallet debited successfully"
	WalletCredited = "wallet credited successfully"
	WalletAdjusted = "wallet adjusted successfully"
)
