package service

import (
	"context"
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

type cardLinkTestDeps struct {
	svc          *CardLinkServiceImpl
	walletRepo   *mocks.MockWalletRepository
	publisher    *mocks.MockEventPublisher
	balanceCache *mocks.MockBalanceCache
	ctrl         *gomock.Controller
}

func setupCardLinkService(t *testing.T) *cardLinkTestDeps {
	ctrl := gomock.NewController(t)
	d := &cardLinkTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		publisher:    mocks.NewMockEventPublisher(ctrl),
		balanceCache: mocks.NewMockBalanceCache(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewCardLinkService(d.walletRepo, d.publisher, d.balanceCache, zerolog.Nop())
	return d
}

func TestCardLinkService_RequestLink_Success(t *testing.T) {
	d := setupCardLinkService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := &domain.Wallet{ID: uuid.New(), PhoneNumber: "987654321", Balance: decimal.NewFromInt(75)}

	d.walletRepo.EXPECT().GetByPhoneNumber(ctx, "987654321").Return(wallet, nil)
	d.publisher.EXPECT().
		Publish(ctx, domain.TopicCardLinkRequested, "987654321", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, evt interface{}) error {
			event, ok := evt.(domain.CardLinkRequestedEvent)
			require.True(t, ok)
			assert.Equal(t, "4532015112830366", event.CardNumber)
			assert.True(t, decimal.NewFromInt(75).Equal(event.CurrentBalance))
			return nil
		})

	err := d.svc.RequestLink(ctx, "987654321", "4532015112830366", "12345678")
	assert.NoError(t, err)
}

func TestCardLinkService_RequestLink_WalletNotFound(t *testing.T) {
	d := setupCardLinkService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.walletRepo.EXPECT().GetByPhoneNumber(ctx, "987654321").Return(nil, nil)

	err := d.svc.RequestLink(ctx, "987654321", "4532015112830366", "12345678")
	assertAppError(t, err, "WAL_002")
}

func TestCardLinkService_HandleConfirmed_LinksAndOverwritesBalance(t *testing.T) {
	d := setupCardLinkService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := &domain.Wallet{
		ID:             uuid.New(),
		PhoneNumber:    "987654321",
		DocumentNumber: "12345678",
		Balance:        decimal.NewFromInt(75),
	}

	event := domain.CardLinkConfirmedEvent{
		PhoneNumber:    "987654321",
		CardNumber:     "4532015112830366",
		DocumentNumber: "12345678",
		UpdatedBalance: decimal.RequireFromString("412.90"),
	}

	d.walletRepo.EXPECT().GetByDocumentNumber(ctx, "12345678").Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, wallet).Return(nil)
	d.balanceCache.EXPECT().Set(ctx, "987654321", gomock.Any(), balanceCacheTTL).Return(nil)

	err := d.svc.HandleConfirmed(ctx, event)
	require.NoError(t, err)
	require.NotNil(t, wallet.LinkedCard)
	assert.Equal(t, "4532015112830366", *wallet.LinkedCard)
	// The pre-link wallet balance is gone; the account balance wins.
	assert.True(t, event.UpdatedBalance.Equal(wallet.Balance))
}

func TestCardLinkService_HandleConfirmed_UnknownDocumentDropped(t *testing.T) {
	d := setupCardLinkService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.walletRepo.EXPECT().GetByDocumentNumber(ctx, "00000000").Return(nil, nil)

	err := d.svc.HandleConfirmed(ctx, domain.CardLinkConfirmedEvent{
		DocumentNumber: "00000000",
		CardNumber:     "4532015112830366",
	})
	assert.NoError(t, err)
}

func TestCardLinkService_HandleRejected_NoStateChange(t *testing.T) {
	d := setupCardLinkService(t)
	defer d.ctrl.Finish()

	err := d.svc.HandleRejected(context.Background(), domain.CardLinkRejectedEvent{
		PhoneNumber: "987654321",
		Reason:      "card blocked",
	})
	assert.NoError(t, err)
}
