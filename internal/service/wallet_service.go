package service

import (
	"context"
	"fmt"
	"time"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	tokenSvc   ports.TokenService
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		tokenSvc:   tokenSvc,
		log:        log,
	}
}

// Register creates a wallet after checking phone, document and IMEI are
// not already registered.
func (s *WalletServiceImpl) Register(ctx context.Context, req ports.RegisterWalletRequest) (*domain.Wallet, error) {
	existing, err := s.walletRepo.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("check phone: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateField("Phone number")
	}

	existing, err = s.walletRepo.GetByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("check document: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateField("Document number")
	}

	existing, err = s.walletRepo.GetByImei(ctx, req.Imei)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("check imei: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateField("IMEI")
	}

	wallet := domain.NewWallet(req.PhoneNumber, req.DocumentNumber, req.Imei, req.Email)
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("phone_number", wallet.PhoneNumber).
		Msg("wallet registered")

	return wallet, nil
}

// Login authenticates a holder by phone and document number pair and
// issues a JWT on success.
func (s *WalletServiceImpl) Login(ctx context.Context, phoneNumber, documentNumber string) (string, time.Time, error) {
	wallet, err := s.walletRepo.GetByPhoneAndDocument(ctx, phoneNumber, documentNumber)
	if err != nil {
		return "", time.Time{}, apperror.ErrPersistence(fmt.Errorf("login lookup: %w", err))
	}
	if wallet == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(wallet.PhoneNumber)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().
		Str("phone_number", wallet.PhoneNumber).
		Msg("holder logged in")

	return token, expiresAt, nil
}

// GetByID fetches a wallet by its UUID.
func (s *WalletServiceImpl) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	walletID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.Validation("Invalid wallet id")
	}

	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound("")
	}
	return wallet, nil
}

// GetByPhoneNumber fetches a wallet by phone number.
func (s *WalletServiceImpl) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("get wallet by phone: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound("")
	}
	return wallet, nil
}

// GetByDocumentNumber fetches a wallet by document number.
func (s *WalletServiceImpl) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("get wallet by document: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound("")
	}
	return wallet, nil
}

// Update replaces the holder's identity fields, re-checking uniqueness for
// any that changed.
func (s *WalletServiceImpl) Update(ctx context.Context, id string, req ports.RegisterWalletRequest) (*domain.Wallet, error) {
	wallet, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != wallet.PhoneNumber {
		existing, err := s.walletRepo.GetByPhoneNumber(ctx, req.PhoneNumber)
		if err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("check phone: %w", err))
		}
		if existing != nil {
			return nil, apperror.ErrDuplicateField("Phone number")
		}
	}
	if req.DocumentNumber != wallet.DocumentNumber {
		existing, err := s.walletRepo.GetByDocumentNumber(ctx, req.DocumentNumber)
		if err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("check document: %w", err))
		}
		if existing != nil {
			return nil, apperror.ErrDuplicateField("Document number")
		}
	}
	if req.Imei != wallet.Imei {
		existing, err := s.walletRepo.GetByImei(ctx, req.Imei)
		if err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("check imei: %w", err))
		}
		if existing != nil {
			return nil, apperror.ErrDuplicateField("IMEI")
		}
	}

	wallet.PhoneNumber = req.PhoneNumber
	wallet.DocumentNumber = req.DocumentNumber
	wallet.Imei = req.Imei
	wallet.Email = req.Email
	wallet.UpdatedAt = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("update wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Msg("wallet updated")

	return wallet, nil
}

// Delete removes a wallet.
func (s *WalletServiceImpl) Delete(ctx context.Context, id string) error {
	wallet, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.walletRepo.Delete(ctx, wallet.ID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("delete wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Msg("wallet deleted")

	return nil
}
