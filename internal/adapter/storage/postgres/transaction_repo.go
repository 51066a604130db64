package postgres

import (
	"context"
	"errors"
	"fmt"

	"yanki-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. Records are
// append-only; there is no update path.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a transaction record inside the settlement transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.TransactionRecord) error {
	query := `INSERT INTO transactions (id, sender_phone_number, receiver_phone_number, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.SenderPhoneNumber, rec.ReceiverPhoneNumber,
		rec.Amount, rec.Status, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a single transaction record.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	query := `SELECT id, sender_phone_number, receiver_phone_number, amount, status, created_at
		FROM transactions WHERE id = $1`

	rec := &domain.TransactionRecord{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.SenderPhoneNumber, &rec.ReceiverPhoneNumber,
		&rec.Amount, &rec.Status, &rec.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return rec, nil
}

// ListByPhoneNumber returns transactions where the holder was either side,
// newest first.
func (r *TransactionRepo) ListByPhoneNumber(ctx context.Context, phoneNumber string) ([]domain.TransactionRecord, error) {
	query := `SELECT id, sender_phone_number, receiver_phone_number, amount, status, created_at
		FROM transactions WHERE sender_phone_number = $1 OR receiver_phone_number = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		if err := rows.Scan(
			&rec.ID, &rec.SenderPhoneNumber, &rec.ReceiverPhoneNumber,
			&rec.Amount, &rec.Status, &rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return records, nil
}
