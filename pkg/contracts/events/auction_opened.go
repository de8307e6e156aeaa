package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evento emitido pelo auction-service quando um leilão é aberto para um veículo.
type AuctionOpened struct {
	EventID     string          `json:"event_id"`
	AuctionID   int64           `json:"auction_id"`
	VehicleID   int64           `json:"vehicle_id"`
	SellerID    int64           `json:"seller_id"`
	SellerOffer decimal.Decimal `json:"seller_offer"`
	Status      string          `json:"status"` // "upcoming" | "live"
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	TsUnixMs    int64           `json:"ts_unix_ms"`
}
