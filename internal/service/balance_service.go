package service

import (
	"context"
	"fmt"
	"time"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// BalanceSyncServiceImpl implements ports.BalanceSyncService. The banking
// ledger owns the balance of a linked account; its updates overwrite the
// local wallet balance wholesale.
type BalanceSyncServiceImpl struct {
	walletRepo   ports.WalletRepository
	balanceCache ports.BalanceCache
	log          zerolog.Logger
}

// NewBalanceSyncService creates a new BalanceSyncServiceImpl.
func NewBalanceSyncService(
	walletRepo ports.WalletRepository,
	balanceCache ports.BalanceCache,
	log zerolog.Logger,
) *BalanceSyncServiceImpl {
	return &BalanceSyncServiceImpl{
		walletRepo:   walletRepo,
		balanceCache: balanceCache,
		log:          log,
	}
}

// HandleBalanceUpdated overwrites the balance of the wallet linked to the
// reported card. Updates for cards no wallet links to are dropped with a
// log entry.
func (s *BalanceSyncServiceImpl) HandleBalanceUpdated(ctx context.Context, event domain.BalanceUpdatedEvent) error {
	wallet, err := s.walletRepo.GetByLinkedCard(ctx, event.CardNumber)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get wallet by card: %w", err))
	}
	if wallet == nil {
		s.log.Warn().
			Str("card_number", event.CardNumber).
			Str("account_id", event.AccountID).
			Msg("balance update for unlinked card, dropping")
		return nil
	}

	wallet.Balance = event.NewBalance
	wallet.UpdatedAt = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, wallet); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("sync balance: %w", err))
	}

	if err := s.balanceCache.Set(ctx, wallet.PhoneNumber, wallet.Balance, balanceCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("phone_number", wallet.PhoneNumber).Msg("failed to refresh balance cache")
	}

	s.log.Info().
		Str("phone_number", wallet.PhoneNumber).
		Str("card_number", event.CardNumber).
		Str("balance", wallet.Balance.String()).
		Msg("linked account balance synced")

	return nil
}
