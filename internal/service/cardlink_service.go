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

// CardLinkServiceImpl implements ports.CardLinkService. Linking runs as a
// round trip with the card system: a request event goes out, and the
// confirmation coming back carries the authoritative account balance.
type CardLinkServiceImpl struct {
	walletRepo   ports.WalletRepository
	publisher    ports.EventPublisher
	balanceCache ports.BalanceCache
	log          zerolog.Logger
}

// NewCardLinkService creates a new CardLinkServiceImpl.
func NewCardLinkService(
	walletRepo ports.WalletRepository,
	publisher ports.EventPublisher,
	balanceCache ports.BalanceCache,
	log zerolog.Logger,
) *CardLinkServiceImpl {
	return &CardLinkServiceImpl{
		walletRepo:   walletRepo,
		publisher:    publisher,
		balanceCache: balanceCache,
		log:          log,
	}
}

// RequestLink asks the card system to bind a card to the holder's wallet.
func (s *CardLinkServiceImpl) RequestLink(ctx context.Context, phoneNumber, cardNumber, documentNumber string) error {
	wallet, err := s.walletRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrWalletNotFound("")
	}

	event := domain.CardLinkRequestedEvent{
		PhoneNumber:    phoneNumber,
		CardNumber:     cardNumber,
		DocumentNumber: documentNumber,
		CurrentBalance: wallet.Balance,
	}
	if err := s.publisher.Publish(ctx, domain.TopicCardLinkRequested, phoneNumber, event); err != nil {
		return apperror.ErrPublish(err)
	}

	s.log.Info().
		Str("phone_number", phoneNumber).
		Str("card_number", cardNumber).
		Msg("card link requested")

	return nil
}

// HandleConfirmed binds the card and overwrites the wallet balance with
// the account balance the card system reported. A confirmation for an
// unknown document is dropped with a log entry.
func (s *CardLinkServiceImpl) HandleConfirmed(ctx context.Context, event domain.CardLinkConfirmedEvent) error {
	wallet, err := s.walletRepo.GetByDocumentNumber(ctx, event.DocumentNumber)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get wallet by document: %w", err))
	}
	if wallet == nil {
		s.log.Warn().
			Str("document_number", event.DocumentNumber).
			Str("card_number", event.CardNumber).
			Msg("card link confirmation for unknown wallet, dropping")
		return nil
	}

	card := event.CardNumber
	wallet.LinkedCard = &card
	wallet.Balance = event.UpdatedBalance
	wallet.UpdatedAt = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, wallet); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("link card: %w", err))
	}

	if err := s.balanceCache.Set(ctx, wallet.PhoneNumber, wallet.Balance, balanceCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("phone_number", wallet.PhoneNumber).Msg("failed to refresh balance cache")
	}

	s.log.Info().
		Str("phone_number", wallet.PhoneNumber).
		Str("card_number", event.CardNumber).
		Str("balance", wallet.Balance.String()).
		Msg("card linked")

	return nil
}

// HandleRejected records the rejection. The wallet keeps its state.
func (s *CardLinkServiceImpl) HandleRejected(ctx context.Context, event domain.CardLinkRejectedEvent) error {
	s.log.Info().
		Str("phone_number", event.PhoneNumber).
		Str("reason", event.Reason).
		Msg("card link rejected")
	return nil
}
