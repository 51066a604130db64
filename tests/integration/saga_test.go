package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "yanki-wallet-service/internal/adapter/http/handler"
	redisStorage "yanki-wallet-service/internal/adapter/storage/redis"
	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/internal/service"
	"yanki-wallet-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack over in-memory storage: real
// HTTP layer, middleware, handlers and services, a miniredis-backed balance
// cache, and a capturing event publisher in place of the bus.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis

	walletRepo *inMemoryWalletRepo
	txRepo     *inMemoryTransactionRepo
	publisher  *inMemoryPublisher

	settlementSvc  ports.SettlementService
	cardLinkSvc    ports.CardLinkService
	balanceSyncSvc ports.BalanceSyncService
	peerSvc        ports.PeerExchangeService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	balanceCache := redisStorage.NewBalanceCache(rdb)

	walletRepo := newInMemoryWalletRepo()
	txRepo := newInMemoryTransactionRepo()
	transactor := newInMemoryTransactor()
	publisher := newInMemoryPublisher()

	log := logger.New("debug", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	walletSvc := service.NewWalletService(walletRepo, tokenSvc, log)
	transferSvc := service.NewTransferService(walletRepo, balanceCache, publisher, log)
	settlementSvc := service.NewSettlementService(walletRepo, txRepo, transactor, balanceCache, log)
	cardLinkSvc := service.NewCardLinkService(walletRepo, publisher, balanceCache, log)
	balanceSyncSvc := service.NewBalanceSyncService(walletRepo, balanceCache, log)
	peerSvc := service.NewPeerExchangeService(walletRepo, txRepo, transactor, balanceCache, publisher, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:   walletSvc,
		TransferSvc: transferSvc,
		CardLinkSvc: cardLinkSvc,
		TxRepo:      txRepo,
		TokenSvc:    tokenSvc,
		Logger:      log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:         server,
		redis:          mr,
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		publisher:      publisher,
		settlementSvc:  settlementSvc,
		cardLinkSvc:    cardLinkSvc,
		balanceSyncSvc: balanceSyncSvc,
		peerSvc:        peerSvc,
	}
}

func (a *testApp) register(t *testing.T, phone, document, imei string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"phone_number":    phone,
		"document_number": document,
		"imei":            imei,
		"email":           fmt.Sprintf("%s@mail.com", phone),
	})
	resp, err := http.Post(a.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func (a *testApp) login(t *testing.T, phone, document string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"phone_number":    phone,
		"document_number": document,
	})
	resp, err := http.Post(a.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	token := loginResp["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// seedBalance writes a balance directly into the store, standing in for
// earlier settled activity.
func (a *testApp) seedBalance(t *testing.T, phone string, amount int64) {
	t.Helper()
	w, err := a.walletRepo.GetByPhoneNumber(context.Background(), phone)
	require.NoError(t, err)
	require.NotNil(t, w)
	w.Balance = decimal.NewFromInt(amount)
	require.NoError(t, a.walletRepo.Update(context.Background(), w))
}

func (a *testApp) balance(t *testing.T, phone string) decimal.Decimal {
	t.Helper()
	w, err := a.walletRepo.GetByPhoneNumber(context.Background(), phone)
	require.NoError(t, err)
	require.NotNil(t, w)
	return w.Balance
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_TransferSaga(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	app.register(t, "912345678", "87654321", "356938035643810")
	app.seedBalance(t, "987654321", 100)

	token := app.login(t, "987654321", "12345678")

	// Initiate the transfer over HTTP. No balance moves yet.
	resp := app.doJSON(t, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
		"receiver_phone_number": "912345678",
		"amount":                "40",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	requested := app.publisher.byTopic(domain.TopicTransferRequested)
	require.Len(t, requested, 1)
	event := requested[0].Event.(domain.TransferRequestedEvent)
	assert.Equal(t, "987654321", event.SenderPhoneNumber)
	assert.Equal(t, "912345678", event.ReceiverPhoneNumber)
	assert.True(t, decimal.NewFromInt(40).Equal(event.Amount))
	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(100)))

	// The settlement authority confirms; balances move atomically.
	err := app.settlementSvc.HandleSettled(context.Background(), domain.TransferSettledEvent{
		TransactionID:       "tx-001",
		SenderPhoneNumber:   "987654321",
		ReceiverPhoneNumber: "912345678",
		Amount:              decimal.NewFromInt(40),
		Status:              "SUCCESS",
		ProcessedAt:         time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(60)))
	assert.True(t, app.balance(t, "912345678").Equal(decimal.NewFromInt(40)))

	// History shows the settled transfer for both sides.
	histResp := app.doJSON(t, http.MethodGet, "/api/v1/transactions", token, nil)
	defer histResp.Body.Close()
	require.Equal(t, http.StatusOK, histResp.StatusCode)

	var hist map[string]interface{}
	require.NoError(t, json.NewDecoder(histResp.Body).Decode(&hist))
	data := hist["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	rec := items[0].(map[string]interface{})
	assert.Equal(t, "SUCCESS", rec["status"])
	assert.Equal(t, "40", rec["amount"])
}

func TestIntegration_CardFundedSenderLeftUntouched(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	app.register(t, "912345678", "87654321", "356938035643810")
	app.seedBalance(t, "987654321", 100)

	// Link a card to the sender via the confirmation event.
	err := app.cardLinkSvc.HandleConfirmed(context.Background(), domain.CardLinkConfirmedEvent{
		PhoneNumber:    "987654321",
		CardNumber:     "4111111111111111",
		DocumentNumber: "12345678",
		UpdatedBalance: decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(250)))

	// A settled transfer from a card-funded sender only credits the receiver;
	// the card network already took the money on its side.
	err = app.settlementSvc.HandleSettled(context.Background(), domain.TransferSettledEvent{
		SenderPhoneNumber:   "987654321",
		ReceiverPhoneNumber: "912345678",
		Amount:              decimal.NewFromInt(30),
		Status:              "SUCCESS",
		ProcessedAt:         time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(250)))
	assert.True(t, app.balance(t, "912345678").Equal(decimal.NewFromInt(30)))
}

func TestIntegration_CardLinkRequestFlow(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	app.seedBalance(t, "987654321", 75)
	token := app.login(t, "987654321", "12345678")

	resp := app.doJSON(t, http.MethodPost, "/api/v1/cards/associate", token, map[string]string{
		"card_number":     "4111111111111111",
		"document_number": "12345678",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	requested := app.publisher.byTopic(domain.TopicCardLinkRequested)
	require.Len(t, requested, 1)
	event := requested[0].Event.(domain.CardLinkRequestedEvent)
	assert.Equal(t, "987654321", event.PhoneNumber)
	assert.Equal(t, "4111111111111111", event.CardNumber)
	assert.True(t, decimal.NewFromInt(75).Equal(event.CurrentBalance))
}

func TestIntegration_BalanceSyncOverwrites(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	require.NoError(t, app.cardLinkSvc.HandleConfirmed(context.Background(), domain.CardLinkConfirmedEvent{
		PhoneNumber:    "987654321",
		CardNumber:     "4111111111111111",
		DocumentNumber: "12345678",
		UpdatedBalance: decimal.NewFromInt(200),
	}))

	err := app.balanceSyncSvc.HandleBalanceUpdated(context.Background(), domain.BalanceUpdatedEvent{
		AccountID:  "acc-1",
		NewBalance: decimal.NewFromInt(420),
		CardNumber: "4111111111111111",
	})
	require.NoError(t, err)

	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(420)))
}

func TestIntegration_PeerTransferRoundTrip(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	app.register(t, "912345678", "87654321", "356938035643810")
	app.seedBalance(t, "987654321", 100)

	err := app.peerSvc.HandleTransferRequest(context.Background(), domain.PeerTransferRequest{
		PurchaseID:        "purchase-1",
		BuyerPhoneNumber:  "987654321",
		SellerPhoneNumber: "912345678",
		Amount:            decimal.NewFromInt(55),
	})
	require.NoError(t, err)

	processed := app.publisher.byTopic(domain.TopicPeerTransferResponse)
	require.Len(t, processed, 1)
	outcome := processed[0].Event.(domain.PeerTransferProcessed)
	assert.True(t, outcome.Success)
	assert.Equal(t, "purchase-1", processed[0].Key)

	assert.True(t, app.balance(t, "987654321").Equal(decimal.NewFromInt(45)))
	assert.True(t, app.balance(t, "912345678").Equal(decimal.NewFromInt(55)))

	records, err := app.txRepo.ListByPhoneNumber(context.Background(), "987654321")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.TransactionStatusSuccess, records[0].Status)
}

func TestIntegration_PeerAssociationCheck(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")

	err := app.peerSvc.HandleAssociationRequest(context.Background(), domain.PeerAssociationRequest{
		EventID:        "evt-1",
		DocumentNumber: "12345678",
		PhoneNumber:    "987654321",
	})
	require.NoError(t, err)

	err = app.peerSvc.HandleAssociationRequest(context.Background(), domain.PeerAssociationRequest{
		EventID:        "evt-2",
		DocumentNumber: "12345678",
		PhoneNumber:    "999999999",
	})
	require.NoError(t, err)

	responses := app.publisher.byTopic(domain.TopicPeerAssociationResp)
	require.Len(t, responses, 2)
	first := responses[0].Event.(domain.PeerAssociationResponse)
	second := responses[1].Event.(domain.PeerAssociationResponse)
	assert.True(t, first.Success)
	assert.False(t, second.Success)
	assert.NotEmpty(t, second.ErrorMessage)
}

func TestIntegration_WrongOwnerCannotDelete(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "987654321", "12345678", "356938035643809")
	app.register(t, "912345678", "87654321", "356938035643810")

	victim, err := app.walletRepo.GetByPhoneNumber(context.Background(), "912345678")
	require.NoError(t, err)
	require.NotNil(t, victim)

	token := app.login(t, "987654321", "12345678")

	resp := app.doJSON(t, http.MethodDelete, "/api/v1/wallets/"+victim.ID.String(), token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	still, err := app.walletRepo.GetByID(context.Background(), victim.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
