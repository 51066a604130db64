package service

import (
	"context"
	"fmt"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// PeerExchangeServiceImpl implements ports.PeerExchangeService, the bridge
// the bootcoin exchange uses to verify wallets and move funds. A transfer
// request is validated and settled in one step, and exactly one processed
// event answers it, success or not.
type PeerExchangeServiceImpl struct {
	walletRepo   ports.WalletRepository
	txRepo       ports.TransactionRepository
	transactor   ports.DBTransactor
	balanceCache ports.BalanceCache
	publisher    ports.EventPublisher
	log          zerolog.Logger
}

// NewPeerExchangeService creates a new PeerExchangeServiceImpl.
func NewPeerExchangeService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	balanceCache ports.BalanceCache,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *PeerExchangeServiceImpl {
	return &PeerExchangeServiceImpl{
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		transactor:   transactor,
		balanceCache: balanceCache,
		publisher:    publisher,
		log:          log,
	}
}

// IsAssociated reports whether a wallet exists for the document number and
// carries exactly the given phone number.
func (s *PeerExchangeServiceImpl) IsAssociated(ctx context.Context, documentNumber, phoneNumber string) (bool, error) {
	wallet, err := s.walletRepo.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return false, apperror.ErrPersistence(fmt.Errorf("get wallet by document: %w", err))
	}
	return wallet != nil && wallet.PhoneNumber == phoneNumber, nil
}

// HandleAssociationRequest answers an association probe. Every request
// gets exactly one keyed response.
func (s *PeerExchangeServiceImpl) HandleAssociationRequest(ctx context.Context, event domain.PeerAssociationRequest) error {
	resp := domain.PeerAssociationResponse{EventID: event.EventID}

	associated, err := s.IsAssociated(ctx, event.DocumentNumber, event.PhoneNumber)
	switch {
	case err != nil:
		s.log.Error().Err(err).Str("event_id", event.EventID).Msg("association lookup failed")
		resp.ErrorMessage = "wallet lookup failed"
	case !associated:
		resp.ErrorMessage = "no wallet matches the document and phone number"
	default:
		resp.Success = true
	}

	if err := s.publisher.Publish(ctx, domain.TopicPeerAssociationResp, event.EventID, resp); err != nil {
		return apperror.ErrPublish(err)
	}

	s.log.Info().
		Str("event_id", event.EventID).
		Bool("success", resp.Success).
		Msg("association request answered")

	return nil
}

// HandleTransferRequest moves funds from buyer to seller and reports the
// outcome. Unlike holder-initiated transfers, the exchange gets its answer
// immediately: validation and settlement happen in one step.
func (s *PeerExchangeServiceImpl) HandleTransferRequest(ctx context.Context, event domain.PeerTransferRequest) error {
	resp := domain.PeerTransferProcessed{}

	record, err := s.settle(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).
			Str("purchase_id", event.PurchaseID).
			Msg("peer transfer failed")
		resp.Message = err.Error()
	} else {
		resp.TransactionID = record.ID.String()
		resp.Success = true
		resp.Message = "transfer completed"
	}

	if err := s.publisher.Publish(ctx, domain.TopicPeerTransferResponse, event.PurchaseID, resp); err != nil {
		return apperror.ErrPublish(err)
	}

	return nil
}

func (s *PeerExchangeServiceImpl) settle(ctx context.Context, event domain.PeerTransferRequest) (*domain.TransactionRecord, error) {
	if event.BuyerPhoneNumber == event.SellerPhoneNumber {
		return nil, apperror.ErrSameParties()
	}
	if !event.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Same lock ordering as transfer settlement.
	first, second := event.BuyerPhoneNumber, event.SellerPhoneNumber
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*domain.Wallet, 2)
	for _, phone := range []string{first, second} {
		w, err := s.walletRepo.GetByPhoneNumberForUpdate(ctx, dbTx, phone)
		if err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("lock wallet %s: %w", phone, err))
		}
		if w == nil {
			side := "Sender"
			if phone == event.SellerPhoneNumber {
				side = "Receiver"
			}
			return nil, apperror.ErrWalletNotFound(side)
		}
		locked[phone] = w
	}
	buyer := locked[event.BuyerPhoneNumber]
	seller := locked[event.SellerPhoneNumber]

	if !buyer.Funding().IsCardFunded() && buyer.Balance.LessThan(event.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	if !buyer.Funding().IsCardFunded() {
		buyer.Debit(event.Amount)
		if err := s.walletRepo.UpdateBalanceTx(ctx, dbTx, buyer); err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("debit buyer: %w", err))
		}
	}
	if !seller.Funding().IsCardFunded() {
		seller.Credit(event.Amount)
		if err := s.walletRepo.UpdateBalanceTx(ctx, dbTx, seller); err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("credit seller: %w", err))
		}
	}

	record := domain.NewTransactionRecord(event.BuyerPhoneNumber, event.SellerPhoneNumber, event.Amount)
	if err := s.txRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("create record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}

	if !buyer.Funding().IsCardFunded() {
		if err := s.balanceCache.Set(ctx, buyer.PhoneNumber, buyer.Balance, balanceCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("phone_number", buyer.PhoneNumber).Msg("failed to refresh balance cache")
		}
	}
	if !seller.Funding().IsCardFunded() {
		if err := s.balanceCache.Set(ctx, seller.PhoneNumber, seller.Balance, balanceCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("phone_number", seller.PhoneNumber).Msg("failed to refresh balance cache")
		}
	}

	s.log.Info().
		Str("purchase_id", event.PurchaseID).
		Str("record_id", record.ID.String()).
		Str("buyer", event.BuyerPhoneNumber).
		Str("seller", event.SellerPhoneNumber).
		Str("amount", event.Amount.String()).
		Msg("peer transfer settled")

	return record, nil
}
