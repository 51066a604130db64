package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bus topics. Field names follow the wire contract of the sibling
// banking-ledger and bootcoin services.
const (
	TopicCardLinkRequested    = "cardlink.requested"
	TopicCardLinkConfirmed    = "cardlink.confirmed"
	TopicCardLinkRejected     = "cardlink.rejected"
	TopicBalanceUpdated       = "account.balance.updated"
	TopicTransferRequested    = "transfer.requested"
	TopicTransferSettled      = "transfer.settled"
	TopicPeerAssociationReq   = "peer.association.requested"
	TopicPeerAssociationResp  = "peer.association.response"
	TopicPeerTransferReq      = "peer.transfer.requested"
	TopicPeerTransferResponse = "peer.transfer.processed"
)

// CardLinkRequestedEvent asks the card system to bind a card to a wallet.
type CardLinkRequestedEvent struct {
	PhoneNumber    string          `json:"phoneNumber"`
	CardNumber     string          `json:"cardNumber"`
	DocumentNumber string          `json:"documentNumber"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// CardLinkConfirmedEvent reports a successful card link together with the
// authoritative balance of the linked account.
type CardLinkConfirmedEvent struct {
	PhoneNumber    string          `json:"phoneNumber"`
	CardNumber     string          `json:"cardNumber"`
	DocumentNumber string          `json:"documentNumber"`
	UpdatedBalance decimal.Decimal `json:"updateBalance"`
}

// CardLinkRejectedEvent reports a declined card link.
type CardLinkRejectedEvent struct {
	PhoneNumber string `json:"phoneNumber"`
	Reason      string `json:"reason"`
}

// BalanceUpdatedEvent reports a balance change on a linked bank account.
type BalanceUpdatedEvent struct {
	AccountID  string          `json:"accountId"`
	NewBalance decimal.Decimal `json:"newBalance"`
	CardNumber string          `json:"cardNumber"`
}

// TransferRequestedEvent asks the settlement authority to execute a
// transfer. Linked-card identifiers let it choose card-network settlement.
type TransferRequestedEvent struct {
	TransactionID       string          `json:"transactionId,omitempty"`
	SenderPhoneNumber   string          `json:"senderPhoneNumber"`
	ReceiverPhoneNumber string          `json:"receiverPhoneNumber"`
	SenderCard          *string         `json:"senderCard"`
	ReceiverCard        *string         `json:"receiverCard"`
	Amount              decimal.Decimal `json:"amount"`
}

// TransferSettledEvent confirms a completed transfer.
type TransferSettledEvent struct {
	TransactionID       string          `json:"transactionId,omitempty"`
	SenderPhoneNumber   string          `json:"senderPhoneNumber"`
	ReceiverPhoneNumber string          `json:"receiverPhoneNumber"`
	Amount              decimal.Decimal `json:"amount"`
	Status              string          `json:"status"`
	Reason              string          `json:"reason,omitempty"`
	ProcessedAt         time.Time       `json:"processedAt"`
}

// PeerAssociationRequest asks whether a wallet matches a document/phone pair.
type PeerAssociationRequest struct {
	EventID        string `json:"eventId"`
	DocumentNumber string `json:"documentNumber"`
	PhoneNumber    string `json:"phoneNumber"`
}

// PeerAssociationResponse answers a PeerAssociationRequest.
type PeerAssociationResponse struct {
	EventID      string `json:"eventId"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// PeerTransferRequest is an inbound transfer order from the bootcoin exchange.
type PeerTransferRequest struct {
	PurchaseID        string          `json:"purchaseId"`
	BuyerPhoneNumber  string          `json:"buyerPhoneNumber"`
	SellerPhoneNumber string          `json:"sellerPhoneNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

// PeerTransferProcessed reports the outcome of a PeerTransferRequest.
type PeerTransferProcessed struct {
	TransactionID string `json:"transactionId"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
}
