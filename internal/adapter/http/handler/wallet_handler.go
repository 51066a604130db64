package handler

import (
	"yanki-wallet-service/internal/adapter/http/dto"
	"yanki-wallet-service/internal/adapter/http/middleware"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"
	"yanki-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet lifecycle and history endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
	txRepo    ports.TransactionRepository
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, txRepo ports.TransactionRepository) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, txRepo: txRepo}
}

// authPhone extracts the authenticated phone number set by the JWT middleware.
func authPhone(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxPhoneNumber)
	if !ok {
		return "", false
	}
	phone, ok := v.(string)
	return phone, ok
}

// GetByID handles GET /api/v1/wallets/:id.
func (h *WalletHandler) GetByID(c *gin.Context) {
	wallet, err := h.walletSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Wallet found", dto.FromWallet(wallet))
}

// GetByPhoneNumber handles GET /api/v1/wallets/phone/:phone.
func (h *WalletHandler) GetByPhoneNumber(c *gin.Context) {
	wallet, err := h.walletSvc.GetByPhoneNumber(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Wallet found", dto.FromWallet(wallet))
}

// GetByDocumentNumber handles GET /api/v1/wallets/document/:document.
func (h *WalletHandler) GetByDocumentNumber(c *gin.Context) {
	wallet, err := h.walletSvc.GetByDocumentNumber(c.Request.Context(), c.Param("document"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Wallet found", dto.FromWallet(wallet))
}

// Update handles PUT /api/v1/wallets/:id. Only the wallet's own holder may
// update it.
func (h *WalletHandler) Update(c *gin.Context) {
	phone, ok := authPhone(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return
	}

	id := c.Param("id")
	current, err := h.walletSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if current.PhoneNumber != phone {
		response.Error(c, apperror.ErrWrongOwner("update a wallet"))
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.Update(c.Request.Context(), id, ports.RegisterWalletRequest{
		PhoneNumber:    req.PhoneNumber,
		DocumentNumber: req.DocumentNumber,
		Imei:           req.Imei,
		Email:          req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wallet updated", dto.FromWallet(wallet))
}

// Delete handles DELETE /api/v1/wallets/:id. Only the wallet's own holder
// may delete it.
func (h *WalletHandler) Delete(c *gin.Context) {
	phone, ok := authPhone(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return
	}

	id := c.Param("id")
	current, err := h.walletSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if current.PhoneNumber != phone {
		response.Error(c, apperror.ErrWrongOwner("delete a wallet"))
		return
	}

	if err := h.walletSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wallet deleted", nil)
}

// ListTransactions handles GET /api/v1/transactions, returning the
// authenticated holder's settled transfers.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	phone, ok := authPhone(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return
	}

	records, err := h.txRepo.ListByPhoneNumber(c.Request.Context(), phone)
	if err != nil {
		response.Error(c, apperror.ErrPersistence(err))
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.FromTransactionRecord(&records[i]))
	}

	response.OK(c, "Transactions found", gin.H{
		"items": items,
		"total": len(items),
	})
}
