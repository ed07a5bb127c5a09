package service

import (
	"context"
	"fmt"
	"wallet-service/internal/metrics"
	"wallet-service/internal/model"
	"wallet-service/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WalletServiceImpl struct {
	walletRepo repository.WalletRepository
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func (s *WalletServiceImpl) CreateWallet(ctx context.Context) (*model.Wallet, error) {
	wallet := &model.Wallet{Balance: decimal.Zero}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.walletRepo.CreateWallet(ctx, wallet, tx); err != nil {
			return fmt.Errorf("create wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("wallet_id", wallet.ID.String()).Msg("wallet created")
	return wallet, nil
}

func (s *WalletServiceImpl) UpdateWallet(ctx context.Context, req *model.WalletOperationRequest) (*model.Wallet, error) {
	var (
		result     *model.Wallet
		oldBalance decimal.Decimal
	)

	// Validate inputs early, before transaction and locks
	err := model.ValidateAmount(req.Amount)
	if err != nil {
		s.observe(req.OperationType, err)
		return nil, err
	}
	amount := *req.Amount

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Held until the transaction ends, concurrent mutations of this wallet wait here
		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, req.WalletID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		newBalance, err := ApplyOperation(wallet, req.OperationType, amount)
		if err != nil {
			return err
		}

		oldBalance = wallet.Balance
		wallet.Balance = newBalance

		if err := s.walletRepo.SaveWallet(ctx, wallet, tx); err != nil {
			return fmt.Errorf("save wallet: %w", err)
		}

		result = wallet
		return nil
	})
	s.observe(req.OperationType, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("wallet_id", result.ID.String()).
		Str("operation", req.OperationType.String()).
		Str("amount", amount.StringFixed(2)).
		Str("old_balance", oldBalance.StringFixed(2)).
		Str("new_balance", result.Balance.StringFixed(2)).
		Msg("wallet balance updated")

	return result, nil
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID uuid.UUID) (*model.Wallet, error) {
	var wallet *model.Wallet

	err := s.dbManager.WithReadOnlyTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetWallet(ctx, walletID, tx)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return wallet, nil
}

func (s *WalletServiceImpl) observe(op model.OperationType, err error) {
	operation := "invalid"
	switch op {
	case model.OperationDeposit, model.OperationWithdraw:
		operation = op.String()
	}

	outcome := "success"
	if err != nil {
		outcome = model.KindOf(err).String()
	}
	metrics.ObserveOperation(operation, outcome)
}
