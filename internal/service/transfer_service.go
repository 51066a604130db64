package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	initiateDeadline = 5 * time.Second
	balanceCacheTTL  = 5 * time.Minute
)

// TransferServiceImpl implements ports.TransferService. It validates a
// transfer request and emits it for settlement; balances are only mutated
// when the settled event comes back.
type TransferServiceImpl struct {
	walletRepo   ports.WalletRepository
	balanceCache ports.BalanceCache
	publisher    ports.EventPublisher
	log          zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	walletRepo ports.WalletRepository,
	balanceCache ports.BalanceCache,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		walletRepo:   walletRepo,
		balanceCache: balanceCache,
		publisher:    publisher,
		log:          log,
	}
}

// Initiate validates the transfer and publishes exactly one request event.
func (s *TransferServiceImpl) Initiate(ctx context.Context, senderPhone, receiverPhone string, amount decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, initiateDeadline)
	defer cancel()

	if senderPhone == receiverPhone {
		return apperror.ErrSameParties()
	}
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}

	sender, err := s.walletRepo.GetByPhoneNumber(ctx, senderPhone)
	if err != nil {
		return s.persistenceOrTimeout(ctx, fmt.Errorf("get sender: %w", err))
	}
	if sender == nil {
		return apperror.ErrWalletNotFound("Sender")
	}

	receiver, err := s.walletRepo.GetByPhoneNumber(ctx, receiverPhone)
	if err != nil {
		return s.persistenceOrTimeout(ctx, fmt.Errorf("get receiver: %w", err))
	}
	if receiver == nil {
		return apperror.ErrWalletNotFound("Receiver")
	}

	// Funds check against the cached balance; the wallet row is the
	// fallback. The check is advisory: settlement re-reads balances and
	// the cached value may lag.
	balance := sender.Balance
	if cached, found, cacheErr := s.balanceCache.Get(ctx, senderPhone); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("phone_number", senderPhone).Msg("balance cache read failed, using stored balance")
	} else if found {
		balance = cached
	}
	if balance.LessThan(amount) {
		return apperror.ErrInsufficientFunds()
	}

	event := domain.TransferRequestedEvent{
		SenderPhoneNumber:   senderPhone,
		ReceiverPhoneNumber: receiverPhone,
		SenderCard:          sender.LinkedCard,
		ReceiverCard:        receiver.LinkedCard,
		Amount:              amount,
	}
	if err := s.publisher.Publish(ctx, domain.TopicTransferRequested, senderPhone, event); err != nil {
		return s.publishOrTimeout(ctx, err)
	}

	s.log.Info().
		Str("sender", senderPhone).
		Str("receiver", receiverPhone).
		Str("amount", amount.String()).
		Msg("transfer requested")

	return nil
}

func (s *TransferServiceImpl) persistenceOrTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperror.ErrTimeout()
	}
	return apperror.ErrPersistence(err)
}

func (s *TransferServiceImpl) publishOrTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperror.ErrTimeout()
	}
	return apperror.ErrPublish(err)
}
