package auction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/vehicle-auction-poc/pkg/contracts/events"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=auction_test

// Store abre transações; fn roda dentro de uma única transação e qualquer erro faz rollback
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx operações tipadas sobre leilões, lances, ledger e cobranças dentro de uma transação
type Tx interface {
	// GetVehicle retorna ErrVehicleNotFound; lock=true usa FOR UPDATE
	GetVehicle(ctx context.Context, id int64, lock bool) (Vehicle, error)
	SetVehicleSaleStatus(ctx context.Context, id int64, status SaleStatus) error

	// CurrentAuction retorna o leilão aberto do veículo ou, se não houver, o mais recente
	// ErrAuctionNotFound quando o veículo nunca teve leilão
	CurrentAuction(ctx context.Context, vehicleID int64, mode LockMode) (Auction, error)
	// InsertAuction preenche ID/CreatedAt; ErrAuctionExists se já houver leilão aberto
	InsertAuction(ctx context.Context, a *Auction) error
	// UpdateAuction grava status/vencedor e espelha os status nos lances do leilão
	UpdateAuction(ctx context.Context, a Auction) error
	ListAuctions(ctx context.Context, f AuctionFilter) ([]Auction, error)
	// CountTotals leilões live, lances registrados e veículos do catálogo
	CountTotals(ctx context.Context) (Totals, error)

	// GetBid lê com lock de linha; ErrBidNotFound se o usuário ainda não deu lance
	GetBid(ctx context.Context, auctionID, userID int64) (Bid, error)
	// InsertBid preenche ID/CreatedAt; ErrDuplicateBid em corrida no (leilão, usuário)
	InsertBid(ctx context.Context, b *Bid) error
	UpdateBid(ctx context.Context, b Bid) error
	// CompleteBids marca todos os lances do leilão como completed (e os trava)
	CompleteBids(ctx context.Context, auctionID int64) error
	ListBids(ctx context.Context, f BidFilter) ([]Bid, error)
	// FinalizeBids marca Won no vencedor e Lost nos demais
	FinalizeBids(ctx context.Context, auctionID, winnerBidID int64) error

	// LockAccount cria a conta se preciso e devolve o saldo travado
	LockAccount(ctx context.Context, userID int64) (decimal.Decimal, error)
	// AccountBalance leitura sem lock; conta inexistente tem saldo zero
	AccountBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	SetAccountBalance(ctx context.Context, userID int64, balance decimal.Decimal) error
	NextReference(ctx context.Context, t EntryType) (int64, error)
	InsertLedgerEntry(ctx context.Context, e *LedgerEntry) error
	ListLedgerEntries(ctx context.Context, userID int64) ([]LedgerEntry, error)

	InsertCharge(ctx context.Context, c Charge) error
	// GetCharge retorna ErrChargeNotFound; lock=true usa FOR UPDATE
	GetCharge(ctx context.Context, id string, lock bool) (Charge, error)
	UpdateCharge(ctx context.Context, c Charge) error
	ListCharges(ctx context.Context, status ChargeStatus, createdBefore time.Time) ([]Charge, error)
}

// Publisher emite os eventos do ciclo de vida (após commit)
type Publisher interface {
	PublishAuctionOpened(ctx context.Context, e events.AuctionOpened) error
	PublishBidPlaced(ctx context.Context, e events.BidPlaced) error
	PublishAuctionClosed(ctx context.Context, e events.AuctionClosed) error
}

// SnapshotCache cache da AuctionView por veículo, versionado
// Get devolve a versão corrente mesmo no miss; Set só grava se a versão ainda for a mesma
// Forget invalida e avança a versão, descartando Sets de leituras anteriores
type SnapshotCache interface {
	Get(ctx context.Context, vehicleID int64, dst *AuctionView) (hit bool, version int64, err error)
	Set(ctx context.Context, vehicleID int64, version int64, v AuctionView) error
	Forget(ctx context.Context, vehicleID int64) error
}

type nopPublisher struct{}

func (nopPublisher) PublishAuctionOpened(context.Context, events.AuctionOpened) error { return nil }
func (nopPublisher) PublishBidPlaced(context.Context, events.BidPlaced) error         { return nil }
func (nopPublisher) PublishAuctionClosed(context.Context, events.AuctionClosed) error { return nil }

type nopCache struct{}

func (nopCache) Get(context.Context, int64, *AuctionView) (bool, int64, error) { return false, 0, nil }
func (nopCache) Set(context.Context, int64, int64, AuctionView) error          { return nil }
func (nopCache) Forget(context.Context, int64) error                           { return nil }
