package service

import (
	"context"
	"wallet-service/internal/model"

	"github.com/google/uuid"
)

// WalletService defines the business logic for wallets
type WalletService interface {
	// CreateWallet creates a wallet with zero balance
	CreateWallet(ctx context.Context) (*model.Wallet, error)

	// UpdateWallet applies a deposit or withdrawal under the wallet's row lock
	UpdateWallet(ctx context.Context, req *model.WalletOperationRequest) (*model.Wallet, error)

	// GetBalance reads a wallet without locking it
	GetBalance(ctx context.Context, walletID uuid.UUID) (*model.Wallet, error)
}
