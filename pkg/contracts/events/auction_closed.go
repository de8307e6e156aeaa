package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evento emitido após o commit do fechamento de um leilão.
// Consumido pelo settlement-worker para solicitar a cobrança ao gateway.
type AuctionClosed struct {
	EventID      string          `json:"event_id"`
	AuctionID    int64           `json:"auction_id"`
	VehicleID    int64           `json:"vehicle_id"`
	SellerID     int64           `json:"seller_id"`
	BidID        int64           `json:"bid_id"`
	WinnerUserID int64           `json:"winner_user_id"`
	Amount       decimal.Decimal `json:"amount"`
	ChargeID     string          `json:"charge_id"`
	ReferenceNo  string          `json:"reference_no"` // referência do lançamento de compra (PUR-n)
	ClosedAt     time.Time       `json:"closed_at"`
	TsUnixMs     int64           `json:"ts_unix_ms"`
}
