package auction

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus ciclo de vida do leilão: upcoming -> live -> end
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusLive     AuctionStatus = "live"
	StatusEnd      AuctionStatus = "end"
)

func (s AuctionStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusEnd:
		return true
	}
	return false
}

// Open indica se o leilão ainda aceita lances ou fechamento
func (s AuctionStatus) Open() bool { return s == StatusUpcoming || s == StatusLive }

// CanTransitionTo só permite avançar; end é terminal
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	switch s {
	case StatusUpcoming:
		return next == StatusLive || next == StatusEnd
	case StatusLive:
		return next == StatusEnd
	}
	return false
}

// BidApproval ongoing -> completed (one-way)
type BidApproval string

const (
	ApprovalOngoing   BidApproval = "ongoing"
	ApprovalCompleted BidApproval = "completed"
)

func (a BidApproval) Valid() bool { return a == ApprovalOngoing || a == ApprovalCompleted }

func (a BidApproval) CanTransitionTo(next BidApproval) bool {
	return a == ApprovalOngoing && next == ApprovalCompleted
}

// WinStatus vazio até o fechamento
type WinStatus string

const (
	WinNone WinStatus = ""
	WinWon  WinStatus = "Won"
	WinLost WinStatus = "Lost"
)

func (w WinStatus) Valid() bool { return w == WinNone || w == WinWon || w == WinLost }

type SaleStatus string

const (
	SaleUpcoming SaleStatus = "upcoming"
	SaleSold     SaleStatus = "sold"
)

func (s SaleStatus) Valid() bool { return s == SaleUpcoming || s == SaleSold }

type VehicleStatus string

const (
	VehicleActive  VehicleStatus = "active"
	VehicleRetired VehicleStatus = "retired"
)

// BidKind max ou monster; exatamente um por lance
type BidKind string

const (
	KindMax     BidKind = "max"
	KindMonster BidKind = "monster"
)

func (k BidKind) Valid() bool { return k == KindMax || k == KindMonster }

// EntryType tipo de lançamento no ledger de fundos
type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
	EntryPurchase   EntryType = "purchase"
	EntrySale       EntryType = "sale"
	EntryPayment    EntryType = "payment"
)

func (e EntryType) Valid() bool {
	switch e {
	case EntryDeposit, EntryWithdrawal, EntryPurchase, EntrySale, EntryPayment:
		return true
	}
	return false
}

// Prefix do número de referência (DP-1, WD-7, PUR-3, ...)
func (e EntryType) Prefix() string {
	switch e {
	case EntryDeposit:
		return "DP"
	case EntryWithdrawal:
		return "WD"
	case EntryPurchase:
		return "PUR"
	case EntrySale:
		return "SL"
	case EntryPayment:
		return "PAY"
	}
	return "REF"
}

type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// Direction saques e compras debitam; o resto credita
func (e EntryType) Direction() Direction {
	if e == EntryWithdrawal || e == EntryPurchase {
		return Debit
	}
	return Credit
}

type ChargeStatus string

const (
	ChargeRequested ChargeStatus = "requested"
	ChargeCaptured  ChargeStatus = "captured"
	ChargeFailed    ChargeStatus = "failed"
)

// LockMode nível de lock na leitura do leilão corrente
type LockMode int

const (
	LockNone LockMode = iota
	LockShare
	LockUpdate
)

// Vehicle item leiloado; pertence ao catálogo
type Vehicle struct {
	ID            int64           `json:"id"`
	VIN           string          `json:"vin"`
	BuyNowPrice   decimal.Decimal `json:"buyNowPrice"`
	SaleStatus    SaleStatus      `json:"saleStatus"`
	VehicleStatus VehicleStatus   `json:"vehicleStatus"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type Auction struct {
	ID          int64           `json:"id"`
	VehicleID   int64           `json:"vehicleId"`
	SellerID    int64           `json:"sellerId"`
	SellerOffer decimal.Decimal `json:"sellerOffer"`
	StartTime   time.Time       `json:"startTime"`
	EndTime     time.Time       `json:"endTime"`
	Status      AuctionStatus   `json:"auctionStatus"`
	BidApproval BidApproval     `json:"bidApprStatus"`
	SaleStatus  SaleStatus      `json:"saleStatus"`
	WinnerBidID *int64          `json:"winnerBidId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	ClosedAt    *time.Time      `json:"closedAt,omitempty"`
}

// Bid um registro por (usuário, leilão); revisões sobrescrevem o mesmo registro
type Bid struct {
	ID          int64               `json:"id"`
	AuctionID   int64               `json:"auctionId"`
	VehicleID   int64               `json:"vehicleId"`
	UserID      int64               `json:"userId"`
	Kind        BidKind             `json:"bidKind"`
	YourOffer   decimal.Decimal     `json:"yourOffer"`
	MaxBid      decimal.NullDecimal `json:"maxBid"`
	MonsterBid  decimal.NullDecimal `json:"monsterBid"`
	SellerOffer decimal.Decimal     `json:"sellerOffer"`
	Status      AuctionStatus       `json:"auctionStatus"`
	BidApproval BidApproval         `json:"bidApprStatus"`
	WinStatus   WinStatus           `json:"winStatus,omitempty"`
	SaleStatus  SaleStatus          `json:"saleStatus"`
	OfferedAt   time.Time           `json:"offeredAt"` // quando o yourOffer atual foi submetido
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// setOffer grava o valor no campo do tipo e zera o outro
func (b *Bid) setOffer(kind BidKind, amount decimal.Decimal, at time.Time) {
	b.Kind = kind
	b.YourOffer = amount
	b.OfferedAt = at
	b.MaxBid = decimal.NullDecimal{}
	b.MonsterBid = decimal.NullDecimal{}
	if kind == KindMax {
		b.MaxBid = decimal.NewNullDecimal(amount)
	} else {
		b.MonsterBid = decimal.NewNullDecimal(amount)
	}
}

type LedgerEntry struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Type        EntryType       `json:"entryType"`
	ReferenceNo string          `json:"referenceNo"`
	Direction   Direction       `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Charge pedido de cobrança ao gateway externo gerado no fechamento
type Charge struct {
	ID          string          `json:"id"`
	AuctionID   int64           `json:"auctionId"`
	VehicleID   int64           `json:"vehicleId"`
	BidID       int64           `json:"bidId"`
	UserID      int64           `json:"userId"`
	SellerID    int64           `json:"sellerId"`
	Amount      decimal.Decimal `json:"amount"`
	ReferenceNo string          `json:"referenceNo"`
	Status      ChargeStatus    `json:"status"`
	ProviderRef string          `json:"providerRef,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	SettledAt   *time.Time      `json:"settledAt,omitempty"`
}

// AuctionView leitura consolidada (cacheada) do leilão corrente de um veículo
type AuctionView struct {
	Auction  Auction `json:"auction"`
	BidCount int     `json:"bidCount"`
	Leading  *Bid    `json:"leading,omitempty"`
}

// Totals contadores do painel administrativo
type Totals struct {
	LiveAuctions int `json:"liveAuctions"`
	BidsPlaced   int `json:"bidsPlaced"`
	Vehicles     int `json:"vehicles"`
}

type Statement struct {
	UserID  int64           `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
	Entries []LedgerEntry   `json:"entries"`
}

// BidFilter zero values não filtram
type BidFilter struct {
	AuctionID int64
	UserID    int64
	WinStatus *WinStatus
}

// AuctionFilter StartedBy filtra start_time <= StartedBy; Lock usa FOR UPDATE SKIP LOCKED
type AuctionFilter struct {
	Status    AuctionStatus
	StartedBy time.Time
	Lock      bool
}

type OpenParams struct {
	VehicleID int64
	SellerID  int64
	StartTime time.Time
	EndTime   time.Time
}

// BidParams exatamente um entre MaxBid e MonsterBid
type BidParams struct {
	UserID     int64
	VehicleID  int64
	MaxBid     *decimal.Decimal
	MonsterBid *decimal.Decimal
}

// ChargeOutcome resultado devolvido pelo gateway
type ChargeOutcome struct {
	Captured    bool
	ProviderRef string
	Reason      string
}
