package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wallet-service/internal/model"
	"wallet-service/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	lockTimeout time.Duration
}

// NewWalletRepository returns a repository whose row locks wait at most lockTimeout.
func NewWalletRepository(lockTimeout time.Duration) repository.WalletRepository {
	return &WalletRepositoryImpl{lockTimeout: lockTimeout}
}

// CreateWallet inserts a wallet with its current balance, the id comes from the database
func (r *WalletRepositoryImpl) CreateWallet(ctx context.Context, wallet *model.Wallet, tx pgx.Tx) error {
	query := `
        INSERT INTO wallet (balance)
        VALUES ($1)
        RETURNING wallet_id, balance, created_at, updated_at`

	err := tx.QueryRow(ctx, query, wallet.Balance).
		Scan(&wallet.ID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return translateError(fmt.Errorf("failed to insert wallet: %w", err))
	}
	return nil
}

// GetWalletForUpdate retrieves a wallet with row-level lock
func (r *WalletRepositoryImpl) GetWalletForUpdate(ctx context.Context, walletID uuid.UUID, tx pgx.Tx) (*model.Wallet, error) {
	// Transaction-local, reset on commit or rollback
	_, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, lockTimeoutSetting(r.lockTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to set lock timeout: %w", err)
	}

	query := `SELECT wallet_id, balance, created_at, updated_at FROM wallet WHERE wallet_id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, walletID), walletID, "failed to get wallet for update")
}

// GetWallet retrieves a wallet without taking a lock
func (r *WalletRepositoryImpl) GetWallet(ctx context.Context, walletID uuid.UUID, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT wallet_id, balance, created_at, updated_at FROM wallet WHERE wallet_id = $1`
	return scanWallet(tx.QueryRow(ctx, query, walletID), walletID, "failed to get wallet")
}

// SaveWallet writes the wallet balance
func (r *WalletRepositoryImpl) SaveWallet(ctx context.Context, wallet *model.Wallet, tx pgx.Tx) error {
	query := `
        UPDATE wallet
        SET balance = $1, updated_at = NOW()
        WHERE wallet_id = $2
        RETURNING updated_at`

	err := tx.QueryRow(ctx, query, wallet.Balance, wallet.ID).Scan(&wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewNotFoundError(model.EntityWallet, wallet.ID)
		}
		return translateError(fmt.Errorf("failed to update wallet: %w", err))
	}
	return nil
}

func scanWallet(row pgx.Row, walletID uuid.UUID, failure string) (*model.Wallet, error) {
	wallet := &model.Wallet{}
	err := row.Scan(&wallet.ID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFoundError(model.EntityWallet, walletID)
		}
		return nil, translateError(fmt.Errorf("%s: %w", failure, err))
	}
	return wallet, nil
}

// lockTimeoutSetting renders d in milliseconds, the unit Postgres assumes.
// Sub-millisecond values round up so the timeout never becomes 0 (wait forever).
func lockTimeoutSetting(d time.Duration) string {
	ms := d.Milliseconds()
	if d%time.Millisecond != 0 || ms == 0 {
		ms++
	}
	return fmt.Sprintf("%dms", ms)
}
