package model

import "github.com/shopspring/decimal"

// AmountScale is the number of fractional digits a wallet amount may carry.
const AmountScale = 2

// MinOperationAmount is the smallest deposit or withdrawal, 0.01.
var MinOperationAmount = decimal.New(1, -AmountScale)

// Field validation messages shared by request binding and the service.
const (
	MsgRequired    = "is required"
	MsgAmountMin   = "must be at least 0.01"
	MsgAmountScale = "must have at most 2 decimal places"
)

// HasAmountScale reports whether d has no more than AmountScale fractional digits.
func HasAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// ValidateAmount checks a requested operation amount.
func ValidateAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return NewValidationError(map[string][]string{"amount": {MsgRequired}})
	}

	var msgs []string
	if amount.LessThan(MinOperationAmount) {
		msgs = append(msgs, MsgAmountMin)
	}
	if !HasAmountScale(*amount) {
		msgs = append(msgs, MsgAmountScale)
	}
	if len(msgs) > 0 {
		return NewValidationError(map[string][]string{"amount": msgs})
	}
	return nil
}
