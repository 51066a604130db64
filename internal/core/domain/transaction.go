package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus marks the recorded outcome of a settled transfer.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
)

// TransactionRecord is an immutable audit entry, created exactly once per
// successfully settled transfer.
type TransactionRecord struct {
	ID                  uuid.UUID         `json:"id"`
	SenderPhoneNumber   string            `json:"sender_phone_number"`
	ReceiverPhoneNumber string            `json:"receiver_phone_number"`
	Amount              decimal.Decimal   `json:"amount"`
	Status              TransactionStatus `json:"status"`
	Timestamp           time.Time         `json:"timestamp"`
}

// NewTransactionRecord builds a SUCCESS audit entry for a settled transfer.
func NewTransactionRecord(senderPhone, receiverPhone string, amount decimal.Decimal) *TransactionRecord {
	return &TransactionRecord{
		ID:                  uuid.New(),
		SenderPhoneNumber:   senderPhone,
		ReceiverPhoneNumber: receiverPhone,
		Amount:              amount,
		Status:              TransactionStatusSuccess,
		Timestamp:           time.Now().UTC(),
	}
}
