package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrVersionConflict is returned by the wallet store when a conditional
// update observes a version other than the one it read. Concurrent writers
// fail loudly instead of silently losing a write.
var ErrVersionConflict = errors.New("wallet version conflict")

// Wallet represents one customer's Yanki balance, optionally linked to an
// external payment card.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	PhoneNumber    string          `json:"phone_number"`
	DocumentNumber string          `json:"document_number"`
	Imei           string          `json:"imei"`
	Email          string          `json:"email"`
	LinkedCard     *string         `json:"linked_card,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	Version        int64           `json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewWallet creates a wallet with a zero balance.
func NewWallet(phoneNumber, documentNumber, imei, email string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:             uuid.New(),
		PhoneNumber:    phoneNumber,
		DocumentNumber: documentNumber,
		Imei:           imei,
		Email:          email,
		Balance:        decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// FundingMode tells how a transfer touching this wallet is settled:
// by mutating the Yanki balance, or by the external card network.
type FundingMode struct {
	card string
}

var walletFunded = FundingMode{}

// WalletFunded is the mode of a wallet with no linked card.
func WalletFunded() FundingMode { return walletFunded }

// CardFunded is the mode of a wallet linked to the given card.
func CardFunded(cardID string) FundingMode { return FundingMode{card: cardID} }

// IsCardFunded reports whether the card network settles this side.
func (m FundingMode) IsCardFunded() bool { return m.card != "" }

// CardID returns the linked card identifier, empty for wallet-funded.
func (m FundingMode) CardID() string { return m.card }

// Funding derives the wallet's funding mode from its linked card.
func (w *Wallet) Funding() FundingMode {
	if w.LinkedCard == nil || *w.LinkedCard == "" {
		return WalletFunded()
	}
	return CardFunded(*w.LinkedCard)
}

// Debit subtracts amount from the balance and refreshes UpdatedAt.
func (w *Wallet) Debit(amount decimal.Decimal) {
	w.Balance = w.Balance.Sub(amount)
	w.UpdatedAt = time.Now().UTC()
}

// Credit adds amount to the balance and refreshes UpdatedAt.
func (w *Wallet) Credit(amount decimal.Decimal) {
	w.Balance = w.Balance.Add(amount)
	w.UpdatedAt = time.Now().UTC()
}
