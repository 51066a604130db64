package integration

import (
	"context"
	"fmt"
	"sync"

	"yanki-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(w *domain.Wallet) bool { return w.PhoneNumber == phone }), nil
}

func (r *inMemoryWalletRepo) GetByDocumentNumber(ctx context.Context, doc string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(w *domain.Wallet) bool { return w.DocumentNumber == doc }), nil
}

func (r *inMemoryWalletRepo) GetByImei(ctx context.Context, imei string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(w *domain.Wallet) bool { return w.Imei == imei }), nil
}

func (r *inMemoryWalletRepo) GetByLinkedCard(ctx context.Context, card string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(w *domain.Wallet) bool {
		return w.LinkedCard != nil && *w.LinkedCard == card
	}), nil
}

func (r *inMemoryWalletRepo) GetByPhoneAndDocument(ctx context.Context, phone, doc string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(w *domain.Wallet) bool {
		return w.PhoneNumber == phone && w.DocumentNumber == doc
	}), nil
}

func (r *inMemoryWalletRepo) GetByPhoneNumberForUpdate(ctx context.Context, tx pgx.Tx, phone string) (*domain.Wallet, error) {
	return r.GetByPhoneNumber(ctx, phone)
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.wallets[w.ID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	if stored.Version != w.Version {
		return domain.ErrVersionConflict
	}
	cp := *w
	cp.Version++
	r.wallets[w.ID] = &cp
	w.Version++
	return nil
}

func (r *inMemoryWalletRepo) UpdateBalanceTx(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.wallets[w.ID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	stored.Balance = w.Balance
	stored.UpdatedAt = w.UpdatedAt
	stored.Version++
	return nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[id]; !ok {
		return fmt.Errorf("wallet not found: %s", id)
	}
	delete(r.wallets, id)
	return nil
}

// findLocked assumes the caller holds the read lock.
func (r *inMemoryWalletRepo) findLocked(match func(*domain.Wallet) bool) *domain.Wallet {
	for _, w := range r.wallets {
		if match(w) {
			cp := *w
			return &cp
		}
	}
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	records []domain.TransactionRecord
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			cp := r.records[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) ListByPhoneNumber(ctx context.Context, phone string) ([]domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.TransactionRecord
	for _, rec := range r.records {
		if rec.SenderPhoneNumber == phone || rec.ReceiverPhoneNumber == phone {
			result = append(result, rec)
		}
	}
	return result, nil
}

// --- In-Memory Event Publisher ---

type publishedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type inMemoryPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func newInMemoryPublisher() *inMemoryPublisher {
	return &inMemoryPublisher{}
}

func (p *inMemoryPublisher) Publish(ctx context.Context, topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *inMemoryPublisher) byTopic(topic string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var result []publishedEvent
	for _, e := range p.events {
		if e.Topic == topic {
			result = append(result, e)
		}
	}
	return result
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
