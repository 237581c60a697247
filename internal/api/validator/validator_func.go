package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	amountRegex       = `^\d+(\.\d{1,2})?$`
	signedAmountRegex = `^-?\d+(\.\d{1,2})?$`
)

const (
	AmountTag       = "amount"
	SignedAmountTag = "signed_amount"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AmountTag:       ValidateAmount,
	SignedAmountTag: ValidateSignedAmount,
}

// ValidateAmount accepts a non-negative decimal with at most two fraction
// digits, e.g. "300" or "49.90".
func ValidateAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	return regexp.MustCompile(amountRegex).MatchString(amount)
}

// ValidateSignedAmount additionally allows a leading minus sign for admin
// adjustments.
func ValidateSignedAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	return regexp.MustCompile(signedAmountRegex).MatchString(amount)
}
