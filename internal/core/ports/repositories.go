package ports

import (
	"context"

	"yanki-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// WalletRepository defines persistence operations for wallets.
// Lookups return (nil, nil) when no wallet matches.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking during settlement.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Wallet, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Wallet, error)
	GetByImei(ctx context.Context, imei string) (*domain.Wallet, error)
	GetByLinkedCard(ctx context.Context, cardNumber string) (*domain.Wallet, error)
	GetByPhoneAndDocument(ctx context.Context, phoneNumber, documentNumber string) (*domain.Wallet, error)
	GetByPhoneNumberForUpdate(ctx context.Context, tx pgx.Tx, phoneNumber string) (*domain.Wallet, error)
	// Update persists the wallet conditional on the version it was read at,
	// returning domain.ErrVersionConflict when a concurrent writer won.
	Update(ctx context.Context, wallet *domain.Wallet) error
	UpdateBalanceTx(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository is the append-only store of completed transfers.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error)
	ListByPhoneNumber(ctx context.Context, phoneNumber string) ([]domain.TransactionRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
