package dto

import "github.com/shopspring/decimal"

// ChargeReq pedido de cobrança; o charge id vai também no header Idempotency-Key
type ChargeReq struct {
	ChargeID    string          `json:"chargeId"`
	ReferenceNo string          `json:"referenceNo"`
	UserID      int64           `json:"userId"`
	AuctionID   int64           `json:"auctionId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

type ChargeResp struct {
	Status      string `json:"status"` // captured | declined
	ProviderRef string `json:"providerRef"`
	Reason      string `json:"reason,omitempty"`
}

const (
	StatusCaptured = "captured"
	StatusDeclined = "declined"

	IdempotencyHeader = "Idempotency-Key"
)
