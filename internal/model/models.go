package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        uuid.UUID       `json:"walletId"`
	Balance   decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type WalletOperationRequest struct {
	WalletID      uuid.UUID        `json:"walletId" binding:"required" swaggertype:"string" format:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	OperationType OperationType    `json:"operationType" binding:"required" swaggertype:"string" enums:"DEPOSIT,WITHDRAW" example:"DEPOSIT"`
	Amount        *decimal.Decimal `json:"amount" binding:"required,dmin=0.01,dscale=2" swaggertype:"string" example:"25.50"`
}

type WalletResponse struct {
	WalletID uuid.UUID `json:"walletId" swaggertype:"string" format:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount   string    `json:"amount" example:"25.50"`
}

func NewWalletResponse(w *Wallet) WalletResponse {
	return WalletResponse{
		WalletID: w.ID,
		Amount:   w.Balance.StringFixed(2),
	}
}

type ErrorResponse struct {
	Message string        `json:"message" example:"resource is busy, retry the request later"`
	Status  int           `json:"status" example:"409"`
	Code    string        `json:"code,omitempty" example:"RESOURCE_BUSY"`
	Details *ErrorDetails `json:"details,omitempty"`
}

type ErrorDetails struct {
	URL    string              `json:"url,omitempty" example:"/v1/wallet"`
	Fields map[string][]string `json:"fields,omitempty"`
}
