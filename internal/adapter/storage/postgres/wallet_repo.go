package postgres

import (
	"context"
	"errors"
	"fmt"

	"yanki-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, phone_number, document_number, imei, email, linked_card, balance, version, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.PhoneNumber, &w.DocumentNumber, &w.Imei, &w.Email,
		&w.LinkedCard, &w.Balance, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, phone_number, document_number, imei, email, linked_card, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.PhoneNumber, w.DocumentNumber, w.Imei, w.Email,
		w.LinkedCard, w.Balance, w.Version, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByPhoneNumber fetches a wallet by phone number (non-locking read).
func (r *WalletRepo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE phone_number = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by phone number: %w", err)
	}
	return w, nil
}

// GetByDocumentNumber fetches a wallet by document number.
func (r *WalletRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE document_number = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by document number: %w", err)
	}
	return w, nil
}

// GetByImei fetches a wallet by device IMEI.
func (r *WalletRepo) GetByImei(ctx context.Context, imei string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE imei = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, imei))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by imei: %w", err)
	}
	return w, nil
}

// GetByLinkedCard fetches the wallet a debit card is linked to.
func (r *WalletRepo) GetByLinkedCard(ctx context.Context, cardNumber string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE linked_card = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, cardNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by linked card: %w", err)
	}
	return w, nil
}

// GetByPhoneAndDocument fetches a wallet matching both credentials.
// Used for login, where the pair must identify a single holder.
func (r *WalletRepo) GetByPhoneAndDocument(ctx context.Context, phoneNumber, documentNumber string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE phone_number = $1 AND document_number = $2`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, phoneNumber, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by phone and document: %w", err)
	}
	return w, nil
}

// GetByPhoneNumberForUpdate fetches a wallet by phone number with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByPhoneNumberForUpdate(ctx context.Context, tx pgx.Tx, phoneNumber string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE phone_number = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// Update persists the wallet conditional on the version it was read at.
// A concurrent writer bumping the version first yields domain.ErrVersionConflict.
func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET phone_number = $1, document_number = $2, imei = $3, email = $4,
		linked_card = $5, balance = $6, version = version + 1, updated_at = $7
		WHERE id = $8 AND version = $9`

	tag, err := r.pool.Exec(ctx, query,
		w.PhoneNumber, w.DocumentNumber, w.Imei, w.Email,
		w.LinkedCard, w.Balance, w.UpdatedAt, w.ID, w.Version,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	w.Version++
	return nil
}

// UpdateBalanceTx updates a wallet's balance within a transaction. The row
// is expected to be locked already via GetByPhoneNumberForUpdate.
func (r *WalletRepo) UpdateBalanceTx(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets SET balance = $1, version = version + 1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, w.Balance, w.ID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	w.Version++
	return nil
}

// Delete removes a wallet by ID.
func (r *WalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM wallets WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", id)
	}
	return nil
}
