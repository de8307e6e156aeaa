package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpenAuctionRequest struct {
	VehicleID int64     `json:"vehicleId"`
	SellerID  int64     `json:"sellerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// PlaceBidRequest exatamente um entre maxBid e monsterBid
type PlaceBidRequest struct {
	UserID     int64            `json:"userId"`
	VehicleID  int64            `json:"vehicleId"`
	MaxBid     *decimal.Decimal `json:"maxBid,omitempty"`
	MonsterBid *decimal.Decimal `json:"monsterBid,omitempty"`
}

type CloseAuctionRequest struct {
	VehicleID int64 `json:"vehicleId"`
}

// FundsRequest depósito ou saque
type FundsRequest struct {
	UserID      int64           `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
