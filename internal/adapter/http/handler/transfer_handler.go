package handler

import (
	"yanki-wallet-service/internal/adapter/http/dto"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"
	"yanki-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfer initiation and card association.
type TransferHandler struct {
	transferSvc ports.TransferService
	cardLinkSvc ports.CardLinkService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService, cardLinkSvc ports.CardLinkService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc, cardLinkSvc: cardLinkSvc}
}

// Initiate handles POST /api/v1/transactions. The sender is always the
// authenticated holder; settlement happens asynchronously.
func (h *TransferHandler) Initiate(c *gin.Context) {
	phone, ok := authPhone(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.transferSvc.Initiate(c.Request.Context(), phone, req.ReceiverPhoneNumber, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transfer requested", dto.AcceptedResponse{Status: "PENDING"})
}

// AssociateCard handles POST /api/v1/cards/associate. Confirmation arrives
// asynchronously from the card system.
func (h *TransferHandler) AssociateCard(c *gin.Context) {
	phone, ok := authPhone(c)
	if !ok {
		response.Error(c, apperror.ErrMissingToken())
		return
	}

	var req dto.AssociateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.cardLinkSvc.RequestLink(c.Request.Context(), phone, req.CardNumber, req.DocumentNumber); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Card association requested", dto.AcceptedResponse{Status: "PENDING"})
}
