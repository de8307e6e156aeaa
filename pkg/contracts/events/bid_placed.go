package events

import "github.com/shopspring/decimal"

type BidPlaced struct {
	EventID   string          `json:"event_id"`
	BidID     int64           `json:"bid_id"`
	AuctionID int64           `json:"auction_id"`
	VehicleID int64           `json:"vehicle_id"`
	UserID    int64           `json:"user_id"`
	Kind      string          `json:"kind"` // "max" | "monster"
	YourOffer decimal.Decimal `json:"your_offer"`
	Revised   bool            `json:"revised"` // true quando atualiza um lance existente
	TsUnixMs  int64           `json:"ts_unix_ms"`
}
