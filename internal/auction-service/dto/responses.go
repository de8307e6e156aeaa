package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID            int64           `json:"id"`
	VehicleID     int64           `json:"vehicleId"`
	SellerID      int64           `json:"sellerId"`
	SellerOffer   decimal.Decimal `json:"sellerOffer"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	AuctionStatus string          `json:"auctionStatus"` // upcoming | live | end
	BidApprStatus string          `json:"bidApprStatus"` // ongoing | completed
	SaleStatus    string          `json:"saleStatus"`
	WinnerBidID   *int64          `json:"winnerBidId,omitempty"`
	ClosedAt      *time.Time      `json:"closedAt,omitempty"`
}

type BidResponse struct {
	ID            int64            `json:"id"`
	AuctionID     int64            `json:"auctionId"`
	VehicleID     int64            `json:"vehicleId"`
	UserID        int64            `json:"userId"`
	BidKind       string           `json:"bidKind"`
	YourOffer     decimal.Decimal  `json:"yourOffer"`
	MaxBid        *decimal.Decimal `json:"maxBid,omitempty"`
	MonsterBid    *decimal.Decimal `json:"monsterBid,omitempty"`
	SellerOffer   decimal.Decimal  `json:"sellerOffer"`
	AuctionStatus string           `json:"auctionStatus"`
	BidApprStatus string           `json:"bidApprStatus"`
	WinStatus     string           `json:"winStatus,omitempty"` // Won | Lost após o fechamento
	SaleStatus    string           `json:"saleStatus"`
	OfferedAt     time.Time        `json:"offeredAt"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type AuctionViewResponse struct {
	Auction  AuctionResponse `json:"auction"`
	BidCount int             `json:"bidCount"`
	Leading  *BidResponse    `json:"leading,omitempty"`
}

// TotalsResponse contadores do painel administrativo
type TotalsResponse struct {
	LiveAuctions int `json:"liveAuctions"`
	BidsPlaced   int `json:"bidsPlaced"`
	Vehicles     int `json:"vehicles"`
}

type PromoteResponse struct {
	Promoted int `json:"promoted"`
}

type LedgerEntryResponse struct {
	ID          int64           `json:"id"`
	EntryType   string          `json:"entryType"`
	ReferenceNo string          `json:"referenceNo"`
	Direction   string          `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type StatementResponse struct {
	UserID  int64                 `json:"userId"`
	Balance decimal.Decimal       `json:"balance"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// ErrorResponse kind: validation | not_found | conflict | storage
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
