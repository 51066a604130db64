package service

import (
	"context"
	"errors"
	"testing"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferTestDeps struct {
	svc          *TransferServiceImpl
	walletRepo   *mocks.MockWalletRepository
	balanceCache *mocks.MockBalanceCache
	publisher    *mocks.MockEventPublisher
	ctrl         *gomock.Controller
}

func setupTransferService(t *testing.T) *transferTestDeps {
	ctrl := gomock.NewController(t)
	d := &transferTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		balanceCache: mocks.NewMockBalanceCache(ctrl),
		publisher:    mocks.NewMockEventPublisher(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewTransferService(d.walletRepo, d.balanceCache, d.publisher, zerolog.Nop())
	return d
}

func TestTransferService_Initiate_Success(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678", Balance: decimal.NewFromInt(5)}

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "912345678").Return(receiver, nil)
	d.balanceCache.EXPECT().Get(gomock.Any(), "987654321").Return(decimal.Zero, false, nil)
	d.publisher.EXPECT().
		Publish(gomock.Any(), domain.TopicTransferRequested, "987654321", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, evt interface{}) error {
			event, ok := evt.(domain.TransferRequestedEvent)
			require.True(t, ok)
			assert.Equal(t, "987654321", event.SenderPhoneNumber)
			assert.Equal(t, "912345678", event.ReceiverPhoneNumber)
			assert.Nil(t, event.SenderCard)
			assert.True(t, decimal.NewFromInt(50).Equal(event.Amount))
			return nil
		})

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(50))
	assert.NoError(t, err)
}

func TestTransferService_Initiate_SameParties(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	err := d.svc.Initiate(context.Background(), "987654321", "987654321", decimal.NewFromInt(10))
	assertAppError(t, err, "TXN_002")
}

func TestTransferService_Initiate_NonPositiveAmount(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.Zero)
	assertAppError(t, err, "TXN_003")

	err = d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(-5))
	assertAppError(t, err, "TXN_003")
}

func TestTransferService_Initiate_SenderNotFound(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(nil, nil)

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(10))
	assertAppError(t, err, "WAL_002")
	assert.Contains(t, err.Error(), "Sender")
}

func TestTransferService_Initiate_ReceiverNotFound(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "912345678").Return(nil, nil)

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(10))
	assertAppError(t, err, "WAL_002")
	assert.Contains(t, err.Error(), "Receiver")
}

func TestTransferService_Initiate_CachedBalancePreferred(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	// Stored balance would cover the amount, but the fresher cached
	// balance says otherwise.
	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678"}

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "912345678").Return(receiver, nil)
	d.balanceCache.EXPECT().Get(gomock.Any(), "987654321").Return(decimal.NewFromInt(20), true, nil)

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(50))
	assertAppError(t, err, "TXN_001")
}

func TestTransferService_Initiate_CacheErrorFallsBackToRow(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678"}

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "912345678").Return(receiver, nil)
	d.balanceCache.EXPECT().Get(gomock.Any(), "987654321").
		Return(decimal.Zero, false, errors.New("redis down"))
	d.publisher.EXPECT().
		Publish(gomock.Any(), domain.TopicTransferRequested, "987654321", gomock.Any()).
		Return(nil)

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(50))
	assert.NoError(t, err)
}

func TestTransferService_Initiate_PublishFailure(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	sender := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(100)}
	receiver := &domain.Wallet{ID: uuid.New(), PhoneNumber: "912345678"}

	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "987654321").Return(sender, nil)
	d.walletRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "912345678").Return(receiver, nil)
	d.balanceCache.EXPECT().Get(gomock.Any(), "987654321").Return(decimal.Zero, false, nil)
	d.publisher.EXPECT().
		Publish(gomock.Any(), domain.TopicTransferRequested, "987654321", gomock.Any()).
		Return(errors.New("broker unreachable"))

	err := d.svc.Initiate(context.Background(), "987654321", "912345678", decimal.NewFromInt(50))
	assertAppError(t, err, "SYS_002")
}
