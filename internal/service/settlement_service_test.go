package service

import (
	"context"
	"testing"
	"time"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

type settlementTestDeps struct {
	svc          *SettlementServiceImpl
	walletRepo   *mocks.MockWalletRepository
	txRepo       *mocks.MockTransactionRepository
	transactor   *mocks.MockDBTransactor
	balanceCache *mocks.MockBalanceCache
	ctrl         *gomock.Controller
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		balanceCache: mocks.NewMockBalanceCache(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewSettlementService(d.walletRepo, d.txRepo, d.transactor, d.balanceCache, zerolog.Nop())
	return d
}

func settledEvent(amount int64) domain.TransferSettledEvent {
	return domain.TransferSettledEvent{
		TransactionID:       uuid.NewString(),
		SenderPhoneNumber:   "987654321",
		ReceiverPhoneNumber: "912345678",
		Amount:              decimal.NewFromInt(amount),
		Status:              "SUCCESS",
		ProcessedAt:         time.Now().UTC(),
	}
}

func TestSettlementService_WalletToWallet(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", Balance: decimal.NewFromInt(10)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(receiver, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, sender).Return(nil)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, receiver).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, rec *domain.TransactionRecord) error {
			assert.Equal(t, "987654321", rec.SenderPhoneNumber)
			assert.Equal(t, "912345678", rec.ReceiverPhoneNumber)
			assert.Equal(t, domain.TransactionStatusSuccess, rec.Status)
			return nil
		})
	d.balanceCache.EXPECT().Set(ctx, "987654321", gomock.Any(), balanceCacheTTL).Return(nil)
	d.balanceCache.EXPECT().Set(ctx, "912345678", gomock.Any(), balanceCacheTTL).Return(nil)

	err := d.svc.HandleSettled(ctx, settledEvent(30))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(sender.Balance))
	assert.True(t, decimal.NewFromInt(40).Equal(receiver.Balance))
}

func TestSettlementService_CardToWallet_CreditsReceiverOnly(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	card := "4532015112830366"
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", LinkedCard: &card, Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", Balance: decimal.NewFromInt(10)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(receiver, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, receiver).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.balanceCache.EXPECT().Set(ctx, "912345678", gomock.Any(), balanceCacheTTL).Return(nil)

	err := d.svc.HandleSettled(ctx, settledEvent(30))
	require.NoError(t, err)
	// Card-funded sender's local balance is untouched.
	assert.True(t, decimal.NewFromInt(100).Equal(sender.Balance))
	assert.True(t, decimal.NewFromInt(40).Equal(receiver.Balance))
}

func TestSettlementService_WalletToCard_DebitsSenderOnly(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	card := "4532015112830366"
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", LinkedCard: &card, Balance: decimal.NewFromInt(10)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(receiver, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, sender).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.balanceCache.EXPECT().Set(ctx, "987654321", gomock.Any(), balanceCacheTTL).Return(nil)

	err := d.svc.HandleSettled(ctx, settledEvent(30))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(sender.Balance))
	assert.True(t, decimal.NewFromInt(10).Equal(receiver.Balance))
}

func TestSettlementService_CardToCard_RecordOnly(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	senderCard := "4532015112830366"
	receiverCard := "4916338506082832"
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", LinkedCard: &senderCard, Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", LinkedCard: &receiverCard, Balance: decimal.NewFromInt(10)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(receiver, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "987654321").Return(sender, nil)
	// No balance mutation on either side, but the audit record still lands.
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.HandleSettled(ctx, settledEvent(30))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(sender.Balance))
	assert.True(t, decimal.NewFromInt(10).Equal(receiver.Balance))
}

func TestSettlementService_NonSuccessIgnored(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	event := settledEvent(30)
	event.Status = "FAILED"
	event.Reason = "card network declined"

	// No transaction is opened at all.
	err := d.svc.HandleSettled(context.Background(), event)
	assert.NoError(t, err)
}

func TestSettlementService_UnknownWalletDropped(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(nil, nil)

	err := d.svc.HandleSettled(ctx, settledEvent(30))
	assert.NoError(t, err)
}

func TestSettlementService_RedeliveryAppliesTwice(t *testing.T) {
	// A settled event redelivered by the bus is applied a second time.
	// Delivery is trusted to be exactly-once; this pins down what happens
	// when it is not.
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", Balance: decimal.NewFromInt(10)}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "912345678").Return(receiver, nil).Times(2)
	d.walletRepo.EXPECT().GetByPhoneNumberForUpdate(ctx, tx, "987654321").Return(sender, nil).Times(2)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, sender).Return(nil).Times(2)
	d.walletRepo.EXPECT().UpdateBalanceTx(ctx, tx, receiver).Return(nil).Times(2)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.balanceCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), balanceCacheTTL).Return(nil).Times(4)

	event := settledEvent(30)
	require.NoError(t, d.svc.HandleSettled(ctx, event))
	require.NoError(t, d.svc.HandleSettled(ctx, event))

	assert.True(t, decimal.NewFromInt(40).Equal(sender.Balance))
	assert.True(t, decimal.NewFromInt(70).Equal(receiver.Balance))
}
