package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
)

// Memory store em memória serializável: cada transação trabalha numa cópia do
// estado com o mutex global travado e só publica a cópia no commit
// Usado nos testes e com STORE_DRIVER=memory
type Memory struct {
	mu     sync.Mutex
	st     *memState
	faults map[string]error
}

type memState struct {
	vehicles map[int64]auction.Vehicle
	auctions map[int64]auction.Auction
	bids     map[int64]auction.Bid
	accounts map[int64]decimal.Decimal
	ledger   []auction.LedgerEntry
	seqs     map[auction.EntryType]int64
	charges  map[string]auction.Charge

	lastVehicle, lastAuction, lastBid, lastEntry int64
}

func NewMemory() *Memory {
	return &Memory{
		st: &memState{
			vehicles: map[int64]auction.Vehicle{},
			auctions: map[int64]auction.Auction{},
			bids:     map[int64]auction.Bid{},
			accounts: map[int64]decimal.Decimal{},
			seqs:     map[auction.EntryType]int64{},
			charges:  map[string]auction.Charge{},
		},
		faults: map[string]error{},
	}
}

func (s *memState) clone() *memState {
	c := *s
	c.vehicles = make(map[int64]auction.Vehicle, len(s.vehicles))
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	c.auctions = make(map[int64]auction.Auction, len(s.auctions))
	for k, v := range s.auctions {
		c.auctions[k] = v
	}
	c.bids = make(map[int64]auction.Bid, len(s.bids))
	for k, v := range s.bids {
		c.bids[k] = v
	}
	c.accounts = make(map[int64]decimal.Decimal, len(s.accounts))
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	c.ledger = append([]auction.LedgerEntry(nil), s.ledger...)
	c.seqs = make(map[auction.EntryType]int64, len(s.seqs))
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	c.charges = make(map[string]auction.Charge, len(s.charges))
	for k, v := range s.charges {
		c.charges[k] = v
	}
	return &c
}

// AddVehicle cadastra um veículo (papel do catálogo externo); id 0 recebe o próximo
func (m *Memory) AddVehicle(v auction.Vehicle) auction.Vehicle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v.ID == 0 {
		m.st.lastVehicle++
		v.ID = m.st.lastVehicle
	} else if v.ID > m.st.lastVehicle {
		m.st.lastVehicle = v.ID
	}
	if v.SaleStatus == "" {
		v.SaleStatus = auction.SaleUpcoming
	}
	if v.VehicleStatus == "" {
		v.VehicleStatus = auction.VehicleActive
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = time.Now().UTC()
	}
	m.st.vehicles[v.ID] = v
	return v
}

// Vehicle leitura fora de transação (testes)
func (m *Memory) Vehicle(id int64) (auction.Vehicle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.st.vehicles[id]
	return v, ok
}

// InjectFault faz a próxima chamada do método (ex.: "FinalizeBids") falhar com err
func (m *Memory) InjectFault(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[method] = err
}

func (m *Memory) InTx(ctx context.Context, fn func(tx auction.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m, st: m.st.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	// request cancelado antes do commit: descarta a cópia
	if err := ctx.Err(); err != nil {
		return err
	}
	m.st = tx.st
	return nil
}

type memTx struct {
	m  *Memory
	st *memState
}

// fault consome a falha injetada; chamado com m.mu travado
func (t *memTx) fault(method string) error {
	if err, ok := t.m.faults[method]; ok {
		delete(t.m.faults, method)
		return err
	}
	return nil
}

func (t *memTx) GetVehicle(_ context.Context, id int64, _ bool) (auction.Vehicle, error) {
	if err := t.fault("GetVehicle"); err != nil {
		return auction.Vehicle{}, err
	}
	v, ok := t.st.vehicles[id]
	if !ok {
		return auction.Vehicle{}, auction.ErrVehicleNotFound
	}
	return v, nil
}

func (t *memTx) SetVehicleSaleStatus(_ context.Context, id int64, status auction.SaleStatus) error {
	if err := t.fault("SetVehicleSaleStatus"); err != nil {
		return err
	}
	v, ok := t.st.vehicles[id]
	if !ok {
		return auction.ErrVehicleNotFound
	}
	v.SaleStatus = status
	v.UpdatedAt = time.Now().UTC()
	t.st.vehicles[id] = v
	return nil
}

func (t *memTx) CurrentAuction(_ context.Context, vehicleID int64, _ auction.LockMode) (auction.Auction, error) {
	if err := t.fault("CurrentAuction"); err != nil {
		return auction.Auction{}, err
	}
	var (
		best  auction.Auction
		found bool
	)
	for _, a := range t.st.auctions {
		if a.VehicleID != vehicleID {
			continue
		}
		if !found || currentBefore(best, a) {
			best, found = a, true
		}
	}
	if !found {
		return auction.Auction{}, auction.ErrAuctionNotFound
	}
	return best, nil
}

// currentBefore leilão aberto tem prioridade; depois o mais recente
func currentBefore(cur, cand auction.Auction) bool {
	if cur.Status.Open() != cand.Status.Open() {
		return cand.Status.Open()
	}
	return cand.ID > cur.ID
}

func (t *memTx) InsertAuction(_ context.Context, a *auction.Auction) error {
	if err := t.fault("InsertAuction"); err != nil {
		return err
	}
	for _, other := range t.st.auctions {
		if other.VehicleID == a.VehicleID && other.Status.Open() {
			return auction.ErrAuctionExists
		}
	}
	t.st.lastAuction++
	a.ID = t.st.lastAuction
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	t.st.auctions[a.ID] = *a
	return nil
}

func (t *memTx) UpdateAuction(_ context.Context, a auction.Auction) error {
	if err := t.fault("UpdateAuction"); err != nil {
		return err
	}
	if _, ok := t.st.auctions[a.ID]; !ok {
		return auction.ErrAuctionNotFound
	}
	t.st.auctions[a.ID] = a
	for id, b := range t.st.bids {
		if b.AuctionID != a.ID {
			continue
		}
		b.Status = a.Status
		b.BidApproval = a.BidApproval
		b.SaleStatus = a.SaleStatus
		t.st.bids[id] = b
	}
	return nil
}

func (t *memTx) ListAuctions(_ context.Context, f auction.AuctionFilter) ([]auction.Auction, error) {
	if err := t.fault("ListAuctions"); err != nil {
		return nil, err
	}
	out := make([]auction.Auction, 0)
	for _, a := range t.st.auctions {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if !f.StartedBy.IsZero() && a.StartTime.After(f.StartedBy) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) CountTotals(_ context.Context) (auction.Totals, error) {
	if err := t.fault("CountTotals"); err != nil {
		return auction.Totals{}, err
	}
	tot := auction.Totals{BidsPlaced: len(t.st.bids), Vehicles: len(t.st.vehicles)}
	for _, a := range t.st.auctions {
		if a.Status == auction.StatusLive {
			tot.LiveAuctions++
		}
	}
	return tot, nil
}

func (t *memTx) GetBid(_ context.Context, auctionID, userID int64) (auction.Bid, error) {
	if err := t.fault("GetBid"); err != nil {
		return auction.Bid{}, err
	}
	for _, b := range t.st.bids {
		if b.AuctionID == auctionID && b.UserID == userID {
			return b, nil
		}
	}
	return auction.Bid{}, auction.ErrBidNotFound
}

func (t *memTx) InsertBid(_ context.Context, b *auction.Bid) error {
	if err := t.fault("InsertBid"); err != nil {
		return err
	}
	for _, other := range t.st.bids {
		if other.AuctionID == b.AuctionID && other.UserID == b.UserID {
			return auction.ErrDuplicateBid
		}
	}
	t.st.lastBid++
	b.ID = t.st.lastBid
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.OfferedAt.IsZero() {
		b.OfferedAt = b.CreatedAt
	}
	t.st.bids[b.ID] = *b
	return nil
}

func (t *memTx) UpdateBid(_ context.Context, b auction.Bid) error {
	if err := t.fault("UpdateBid"); err != nil {
		return err
	}
	if _, ok := t.st.bids[b.ID]; !ok {
		return auction.ErrBidNotFound
	}
	t.st.bids[b.ID] = b
	return nil
}

func (t *memTx) CompleteBids(_ context.Context, auctionID int64) error {
	if err := t.fault("CompleteBids"); err != nil {
		return err
	}
	for id, b := range t.st.bids {
		if b.AuctionID == auctionID {
			b.BidApproval = auction.ApprovalCompleted
			t.st.bids[id] = b
		}
	}
	return nil
}

func (t *memTx) ListBids(_ context.Context, f auction.BidFilter) ([]auction.Bid, error) {
	if err := t.fault("ListBids"); err != nil {
		return nil, err
	}
	out := make([]auction.Bid, 0)
	for _, b := range t.st.bids {
		if f.AuctionID != 0 && b.AuctionID != f.AuctionID {
			continue
		}
		if f.UserID != 0 && b.UserID != f.UserID {
			continue
		}
		if f.WinStatus != nil && b.WinStatus != *f.WinStatus {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) FinalizeBids(_ context.Context, auctionID, winnerBidID int64) error {
	if err := t.fault("FinalizeBids"); err != nil {
		return err
	}
	for id, b := range t.st.bids {
		if b.AuctionID != auctionID {
			continue
		}
		b.WinStatus = auction.WinLost
		if id == winnerBidID {
			b.WinStatus = auction.WinWon
		}
		t.st.bids[id] = b
	}
	return nil
}

func (t *memTx) LockAccount(_ context.Context, userID int64) (decimal.Decimal, error) {
	if err := t.fault("LockAccount"); err != nil {
		return decimal.Zero, err
	}
	bal, ok := t.st.accounts[userID]
	if !ok {
		bal = decimal.Zero
		t.st.accounts[userID] = bal
	}
	return bal, nil
}

func (t *memTx) AccountBalance(_ context.Context, userID int64) (decimal.Decimal, error) {
	if err := t.fault("AccountBalance"); err != nil {
		return decimal.Zero, err
	}
	if bal, ok := t.st.accounts[userID]; ok {
		return bal, nil
	}
	return decimal.Zero, nil
}

func (t *memTx) SetAccountBalance(_ context.Context, userID int64, balance decimal.Decimal) error {
	if err := t.fault("SetAccountBalance"); err != nil {
		return err
	}
	t.st.accounts[userID] = balance
	return nil
}

func (t *memTx) NextReference(_ context.Context, et auction.EntryType) (int64, error) {
	if err := t.fault("NextReference"); err != nil {
		return 0, err
	}
	t.st.seqs[et]++
	return t.st.seqs[et], nil
}

func (t *memTx) InsertLedgerEntry(_ context.Context, e *auction.LedgerEntry) error {
	if err := t.fault("InsertLedgerEntry"); err != nil {
		return err
	}
	t.st.lastEntry++
	e.ID = t.st.lastEntry
	t.st.ledger = append(t.st.ledger, *e)
	return nil
}

func (t *memTx) ListLedgerEntries(_ context.Context, userID int64) ([]auction.LedgerEntry, error) {
	if err := t.fault("ListLedgerEntries"); err != nil {
		return nil, err
	}
	out := make([]auction.LedgerEntry, 0)
	for _, e := range t.st.ledger {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (t *memTx) InsertCharge(_ context.Context, c auction.Charge) error {
	if err := t.fault("InsertCharge"); err != nil {
		return err
	}
	for _, other := range t.st.charges {
		if other.AuctionID == c.AuctionID {
			return auction.ErrAlreadyClosed
		}
	}
	t.st.charges[c.ID] = c
	return nil
}

func (t *memTx) GetCharge(_ context.Context, id string, _ bool) (auction.Charge, error) {
	if err := t.fault("GetCharge"); err != nil {
		return auction.Charge{}, err
	}
	c, ok := t.st.charges[id]
	if !ok {
		return auction.Charge{}, auction.ErrChargeNotFound
	}
	return c, nil
}

func (t *memTx) UpdateCharge(_ context.Context, c auction.Charge) error {
	if err := t.fault("UpdateCharge"); err != nil {
		return err
	}
	if _, ok := t.st.charges[c.ID]; !ok {
		return auction.ErrChargeNotFound
	}
	t.st.charges[c.ID] = c
	return nil
}

func (t *memTx) ListCharges(_ context.Context, status auction.ChargeStatus, createdBefore time.Time) ([]auction.Charge, error) {
	if err := t.fault("ListCharges"); err != nil {
		return nil, err
	}
	out := make([]auction.Charge, 0)
	for _, c := range t.st.charges {
		if c.Status == status && c.CreatedAt.Before(createdBefore) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
