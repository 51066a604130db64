package dto

import (
	"github.com/shopspring/decimal"

	"yanki-wallet-service/internal/core/domain"
)

// RegisterRequest is the request body for wallet registration.
type RegisterRequest struct {
	PhoneNumber    string `json:"phone_number" binding:"required,phone_number"`
	DocumentNumber string `json:"document_number" binding:"required,document_number"`
	Imei           string `json:"imei" binding:"required,imei"`
	Email          string `json:"email" binding:"required,email"`
}

// LoginRequest is the request body for holder login.
type LoginRequest struct {
	PhoneNumber    string `json:"phone_number" binding:"required,phone_number"`
	DocumentNumber string `json:"document_number" binding:"required,document_number"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TransactionRequest is the request body for initiating a transfer.
// Amount is validated for positivity by the transfer service.
type TransactionRequest struct {
	ReceiverPhoneNumber string          `json:"receiver_phone_number" binding:"required,phone_number"`
	Amount              decimal.Decimal `json:"amount"`
}

// AssociateCardRequest is the request body for starting a card link.
type AssociateCardRequest struct {
	CardNumber     string `json:"card_number" binding:"required,min=13,max=19,numeric"`
	DocumentNumber string `json:"document_number" binding:"required,document_number"`
}

// AcceptedResponse acknowledges an asynchronous operation that was queued
// but not yet settled.
type AcceptedResponse struct {
	Status string `json:"status"`
}

// WalletResponse is the API shape of a wallet.
type WalletResponse struct {
	ID             string  `json:"id"`
	PhoneNumber    string  `json:"phone_number"`
	DocumentNumber string  `json:"document_number"`
	Imei           string  `json:"imei"`
	Email          string  `json:"email"`
	LinkedCard     *string `json:"linked_card,omitempty"`
	Balance        string  `json:"balance"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// FromWallet converts a domain wallet to its API shape.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID.String(),
		PhoneNumber:    w.PhoneNumber,
		DocumentNumber: w.DocumentNumber,
		Imei:           w.Imei,
		Email:          w.Email,
		LinkedCard:     w.LinkedCard,
		Balance:        w.Balance.String(),
		CreatedAt:      w.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      w.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// TransactionResponse is the API shape of a settled transfer record.
type TransactionResponse struct {
	ID                  string `json:"id"`
	SenderPhoneNumber   string `json:"sender_phone_number"`
	ReceiverPhoneNumber string `json:"receiver_phone_number"`
	Amount              string `json:"amount"`
	Status              string `json:"status"`
	Timestamp           string `json:"timestamp"`
}

// FromTransactionRecord converts a domain record to its API shape.
func FromTransactionRecord(rec *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:                  rec.ID.String(),
		SenderPhoneNumber:   rec.SenderPhoneNumber,
		ReceiverPhoneNumber: rec.ReceiverPhoneNumber,
		Amount:              rec.Amount.String(),
		Status:              string(rec.Status),
		Timestamp:           rec.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
