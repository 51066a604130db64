package ports

import (
	"context"
	"time"

	"yanki-wallet-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// TokenService handles JWT token operations. The subject is the holder's
// phone number.
type TokenService interface {
	Generate(phoneNumber string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PhoneNumber string
}

// BalanceCache is a best-effort, possibly-stale read cache of wallet
// balances keyed by phone number. Misses return (decimal.Zero, false, nil).
type BalanceCache interface {
	Get(ctx context.Context, phoneNumber string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, phoneNumber string, balance decimal.Decimal, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// WalletService defines wallet lifecycle and authentication logic.
type WalletService interface {
	Register(ctx context.Context, req RegisterWalletRequest) (*domain.Wallet, error)
	Login(ctx context.Context, phoneNumber, documentNumber string) (string, time.Time, error)
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Wallet, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Wallet, error)
	Update(ctx context.Context, id string, req RegisterWalletRequest) (*domain.Wallet, error)
	Delete(ctx context.Context, id string) error
}

// RegisterWalletRequest holds validated input for wallet registration.
type RegisterWalletRequest struct {
	PhoneNumber    string
	DocumentNumber string
	Imei           string
	Email          string
}

// TransferService validates a requested transfer and emits the request
// event; it never mutates balances.
type TransferService interface {
	Initiate(ctx context.Context, senderPhone, receiverPhone string, amount decimal.Decimal) error
}

// CardLinkService starts card associations and reacts to the card system's
// confirmation or rejection.
type CardLinkService interface {
	RequestLink(ctx context.Context, phoneNumber, cardNumber, documentNumber string) error
	HandleConfirmed(ctx context.Context, event domain.CardLinkConfirmedEvent) error
	HandleRejected(ctx context.Context, event domain.CardLinkRejectedEvent) error
}

// SettlementService applies confirmed transfers to wallet balances.
type SettlementService interface {
	HandleSettled(ctx context.Context, event domain.TransferSettledEvent) error
}

// BalanceSyncService applies externally-reported account balance changes
// to the linked wallet.
type BalanceSyncService interface {
	HandleBalanceUpdated(ctx context.Context, event domain.BalanceUpdatedEvent) error
}

// PeerExchangeService bridges the bootcoin exchange into the transfer
// pipeline.
type PeerExchangeService interface {
	IsAssociated(ctx context.Context, documentNumber, phoneNumber string) (bool, error)
	HandleAssociationRequest(ctx context.Context, event domain.PeerAssociationRequest) error
	HandleTransferRequest(ctx context.Context, event domain.PeerTransferRequest) error
}
