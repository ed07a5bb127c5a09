package service

import (
	"wallet-service/internal/model"

	"github.com/shopspring/decimal"
)

// ApplyOperation computes the balance wallet would have after op, or the
// reason op is rejected. It does no I/O and never mutates wallet.
func ApplyOperation(wallet *model.Wallet, op model.OperationType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case model.OperationDeposit:
		return wallet.Balance.Add(amount), nil
	case model.OperationWithdraw:
		if wallet.Balance.LessThan(amount) {
			return wallet.Balance, model.NewInsufficientFundsError(wallet.ID, amount)
		}
		return wallet.Balance.Sub(amount), nil
	default:
		return wallet.Balance, model.NewInvalidOperationTypeError(op)
	}
}
