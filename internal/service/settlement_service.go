package service

import (
	"context"
	"fmt"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// SettlementServiceImpl implements ports.SettlementService. It applies
// confirmed transfers to wallet balances and appends the audit record.
//
// Which side is mutated depends on each wallet's funding mode: a
// card-funded side is settled by the card network, so its Yanki balance
// is left alone. A redelivered settled event is applied again; the bus
// is trusted to deliver each settlement once.
type SettlementServiceImpl struct {
	walletRepo   ports.WalletRepository
	txRepo       ports.TransactionRepository
	transactor   ports.DBTransactor
	balanceCache ports.BalanceCache
	log          zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	balanceCache ports.BalanceCache,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		transactor:   transactor,
		balanceCache: balanceCache,
		log:          log,
	}
}

// HandleSettled applies one settled transfer. Non-SUCCESS settlements and
// settlements naming unknown wallets are dropped with a log entry.
func (s *SettlementServiceImpl) HandleSettled(ctx context.Context, event domain.TransferSettledEvent) error {
	if event.Status != string(domain.TransactionStatusSuccess) {
		s.log.Info().
			Str("transaction_id", event.TransactionID).
			Str("status", event.Status).
			Str("reason", event.Reason).
			Msg("ignoring non-success settlement")
		return nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock both rows in phone-number order so two settlements touching
	// the same pair cannot deadlock.
	first, second := event.SenderPhoneNumber, event.ReceiverPhoneNumber
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*domain.Wallet, 2)
	for _, phone := range []string{first, second} {
		w, err := s.walletRepo.GetByPhoneNumberForUpdate(ctx, dbTx, phone)
		if err != nil {
			return apperror.ErrPersistence(fmt.Errorf("lock wallet %s: %w", phone, err))
		}
		if w == nil {
			s.log.Warn().
				Str("transaction_id", event.TransactionID).
				Str("phone_number", phone).
				Msg("settlement names unknown wallet, dropping")
			return nil
		}
		locked[phone] = w
	}
	sender := locked[event.SenderPhoneNumber]
	receiver := locked[event.ReceiverPhoneNumber]

	if !sender.Funding().IsCardFunded() {
		sender.Debit(event.Amount)
		if err := s.walletRepo.UpdateBalanceTx(ctx, dbTx, sender); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("debit sender: %w", err))
		}
	}
	if !receiver.Funding().IsCardFunded() {
		receiver.Credit(event.Amount)
		if err := s.walletRepo.UpdateBalanceTx(ctx, dbTx, receiver); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("credit receiver: %w", err))
		}
	}

	record := domain.NewTransactionRecord(event.SenderPhoneNumber, event.ReceiverPhoneNumber, event.Amount)
	if err := s.txRepo.Create(ctx, dbTx, record); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("create record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}

	// Best-effort cache refresh for the mutated sides.
	if !sender.Funding().IsCardFunded() {
		if err := s.balanceCache.Set(ctx, sender.PhoneNumber, sender.Balance, balanceCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("phone_number", sender.PhoneNumber).Msg("failed to refresh balance cache")
		}
	}
	if !receiver.Funding().IsCardFunded() {
		if err := s.balanceCache.Set(ctx, receiver.PhoneNumber, receiver.Balance, balanceCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("phone_number", receiver.PhoneNumber).Msg("failed to refresh balance cache")
		}
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("sender", event.SenderPhoneNumber).
		Str("receiver", event.ReceiverPhoneNumber).
		Str("amount", event.Amount.String()).
		Bool("sender_card_funded", sender.Funding().IsCardFunded()).
		Bool("receiver_card_funded", receiver.Funding().IsCardFunded()).
		Msg("transfer settled")

	return nil
}
