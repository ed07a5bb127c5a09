package repository

import (
	"context"
	"wallet-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a read-write database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error

	// WithReadOnlyTransaction executes a function within a read-only database transaction
	WithReadOnlyTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository defines the persistent operations on wallets
type WalletRepository interface {
	// CreateWallet inserts a wallet and fills in its generated id and timestamps
	CreateWallet(ctx context.Context, wallet *model.Wallet, tx pgx.Tx) error

	// GetWalletForUpdate retrieves a wallet under an exclusive row lock held until tx ends
	GetWalletForUpdate(ctx context.Context, walletID uuid.UUID, tx pgx.Tx) (*model.Wallet, error)

	// GetWallet retrieves a wallet without locking
	GetWallet(ctx context.Context, walletID uuid.UUID, tx pgx.Tx) (*model.Wallet, error)

	// SaveWallet persists the balance of a wallet locked in tx
	SaveWallet(ctx context.Context, wallet *model.Wallet, tx pgx.Tx) error
}
