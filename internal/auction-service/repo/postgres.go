package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
)

// Postgres implementa o Store sobre database/sql + lib/pq
// Locks: FOR SHARE no leilão para lances, FOR UPDATE para abrir/fechar/promover
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

const uniqueViolation = "23505"

// isUniqueViolation compara o código do pq.Error e, se informado, o nome da constraint
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

func (p *Postgres) InTx(ctx context.Context, fn func(tx auction.Tx) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type pgTx struct{ tx *sql.Tx }

func lockSuffix(m auction.LockMode) string {
	switch m {
	case auction.LockShare:
		return " FOR SHARE"
	case auction.LockUpdate:
		return " FOR UPDATE"
	}
	return ""
}

func (t *pgTx) GetVehicle(ctx context.Context, id int64, lock bool) (auction.Vehicle, error) {
	q := `SELECT id, vin, buy_now_price, sale_status, vehicle_status, updated_at FROM vehicles WHERE id=$1`
	if lock {
		q += " FOR UPDATE"
	}
	var v auction.Vehicle
	err := t.tx.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.VIN, &v.BuyNowPrice, &v.SaleStatus, &v.VehicleStatus, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auction.Vehicle{}, auction.ErrVehicleNotFound
	}
	if err != nil {
		return auction.Vehicle{}, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (t *pgTx) SetVehicleSaleStatus(ctx context.Context, id int64, status auction.SaleStatus) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE vehicles SET sale_status=$2, updated_at=NOW() WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("set vehicle sale status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return auction.ErrVehicleNotFound
	}
	return nil
}

const auctionCols = `id, vehicle_id, seller_id, seller_offer, start_time, end_time, auction_status,
	bid_appr_status, sale_status, winner_bid_id, created_at, updated_at, closed_at`

type rowScanner interface{ Scan(dest ...any) error }

func scanAuction(r rowScanner) (auction.Auction, error) {
	var (
		a        auction.Auction
		winner   sql.NullInt64
		closedAt sql.NullTime
	)
	if err := r.Scan(&a.ID, &a.VehicleID, &a.SellerID, &a.SellerOffer, &a.StartTime, &a.EndTime, &a.Status,
		&a.BidApproval, &a.SaleStatus, &winner, &a.CreatedAt, &a.UpdatedAt, &closedAt); err != nil {
		return auction.Auction{}, err
	}
	if winner.Valid {
		a.WinnerBidID = &winner.Int64
	}
	if closedAt.Valid {
		a.ClosedAt = &closedAt.Time
	}
	return a, nil
}

func (t *pgTx) CurrentAuction(ctx context.Context, vehicleID int64, mode auction.LockMode) (auction.Auction, error) {
	q := `SELECT ` + auctionCols + ` FROM auctions WHERE vehicle_id=$1
		ORDER BY (auction_status <> 'end') DESC, id DESC LIMIT 1` + lockSuffix(mode)
	a, err := scanAuction(t.tx.QueryRowContext(ctx, q, vehicleID))
	if errors.Is(err, sql.ErrNoRows) {
		return auction.Auction{}, auction.ErrAuctionNotFound
	}
	if err != nil {
		return auction.Auction{}, fmt.Errorf("current auction: %w", err)
	}
	return a, nil
}

func (t *pgTx) InsertAuction(ctx context.Context, a *auction.Auction) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO auctions(vehicle_id, seller_id, seller_offer, start_time, end_time, auction_status,
			bid_appr_status, sale_status, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		RETURNING id`,
		a.VehicleID, a.SellerID, a.SellerOffer, a.StartTime, a.EndTime, a.Status,
		a.BidApproval, a.SaleStatus, a.CreatedAt).Scan(&a.ID)
	if isUniqueViolation(err, "auctions_one_open_per_vehicle") {
		return auction.ErrAuctionExists
	}
	if err != nil {
		return fmt.Errorf("insert auction: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateAuction(ctx context.Context, a auction.Auction) error {
	var (
		winner   sql.NullInt64
		closedAt sql.NullTime
	)
	if a.WinnerBidID != nil {
		winner = sql.NullInt64{Int64: *a.WinnerBidID, Valid: true}
	}
	if a.ClosedAt != nil {
		closedAt = sql.NullTime{Time: *a.ClosedAt, Valid: true}
	}
	res, err := t.tx.ExecContext(ctx, `
		UPDATE auctions SET auction_status=$2, bid_appr_status=$3, sale_status=$4,
			winner_bid_id=$5, closed_at=$6, updated_at=$7
		WHERE id=$1`,
		a.ID, a.Status, a.BidApproval, a.SaleStatus, winner, closedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update auction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return auction.ErrAuctionNotFound
	}

	// linhas de lance espelham os status do leilão
	if _, err := t.tx.ExecContext(ctx, `
		UPDATE bids SET auction_status=$2, bid_appr_status=$3, sale_status=$4
		WHERE auction_id=$1`,
		a.ID, a.Status, a.BidApproval, a.SaleStatus); err != nil {
		return fmt.Errorf("mirror auction status: %w", err)
	}
	return nil
}

func (t *pgTx) ListAuctions(ctx context.Context, f auction.AuctionFilter) ([]auction.Auction, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("auction_status=$%d", len(args)))
	}
	if !f.StartedBy.IsZero() {
		args = append(args, f.StartedBy)
		conds = append(conds, fmt.Sprintf("start_time<=$%d", len(args)))
	}
	q := `SELECT ` + auctionCols + ` FROM auctions`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"
	if f.Lock {
		q += " FOR UPDATE SKIP LOCKED"
	}

	rows, err := t.tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	out := make([]auction.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (t *pgTx) CountTotals(ctx context.Context) (auction.Totals, error) {
	var tot auction.Totals
	err := t.tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM auctions WHERE auction_status='live'),
			(SELECT COUNT(*) FROM bids),
			(SELECT COUNT(*) FROM vehicles)`).Scan(&tot.LiveAuctions, &tot.BidsPlaced, &tot.Vehicles)
	if err != nil {
		return auction.Totals{}, fmt.Errorf("count totals: %w", err)
	}
	return tot, nil
}

const bidCols = `id, auction_id, vehicle_id, user_id, bid_kind, your_offer, max_bid, monster_bid, seller_offer,
	auction_status, bid_appr_status, win_status, sale_status, offered_at, created_at, updated_at`

func scanBid(r rowScanner) (auction.Bid, error) {
	var (
		b   auction.Bid
		win sql.NullString
	)
	if err := r.Scan(&b.ID, &b.AuctionID, &b.VehicleID, &b.UserID, &b.Kind, &b.YourOffer, &b.MaxBid, &b.MonsterBid,
		&b.SellerOffer, &b.Status, &b.BidApproval, &win, &b.SaleStatus, &b.OfferedAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return auction.Bid{}, err
	}
	b.WinStatus = auction.WinStatus(win.String)
	return b, nil
}

func (t *pgTx) GetBid(ctx context.Context, auctionID, userID int64) (auction.Bid, error) {
	b, err := scanBid(t.tx.QueryRowContext(ctx,
		`SELECT `+bidCols+` FROM bids WHERE auction_id=$1 AND user_id=$2 FOR UPDATE`, auctionID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return auction.Bid{}, auction.ErrBidNotFound
	}
	if err != nil {
		return auction.Bid{}, fmt.Errorf("get bid: %w", err)
	}
	return b, nil
}

// InsertBid usa savepoint para que a violação de unicidade não aborte a transação
// e o chamador possa reler a linha concorrente como revisão
func (t *pgTx) InsertBid(ctx context.Context, b *auction.Bid) error {
	if _, err := t.tx.ExecContext(ctx, `SAVEPOINT insert_bid`); err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO bids(auction_id, vehicle_id, user_id, bid_kind, your_offer, max_bid, monster_bid, seller_offer,
			auction_status, bid_appr_status, sale_status, offered_at, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id`,
		b.AuctionID, b.VehicleID, b.UserID, b.Kind, b.YourOffer, b.MaxBid, b.MonsterBid, b.SellerOffer,
		b.Status, b.BidApproval, b.SaleStatus, b.OfferedAt, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if isUniqueViolation(err, "bids_one_per_user") {
		if _, rerr := t.tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT insert_bid`); rerr != nil {
			return fmt.Errorf("rollback to savepoint: %w", rerr)
		}
		return auction.ErrDuplicateBid
	}
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	if _, err := t.tx.ExecContext(ctx, `RELEASE SAVEPOINT insert_bid`); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateBid(ctx context.Context, b auction.Bid) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE bids SET bid_kind=$2, your_offer=$3, max_bid=$4, monster_bid=$5, auction_status=$6,
			offered_at=$7, updated_at=$8
		WHERE id=$1`,
		b.ID, b.Kind, b.YourOffer, b.MaxBid, b.MonsterBid, b.Status, b.OfferedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bid: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return auction.ErrBidNotFound
	}
	return nil
}

func (t *pgTx) CompleteBids(ctx context.Context, auctionID int64) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE bids SET bid_appr_status='completed' WHERE auction_id=$1`, auctionID); err != nil {
		return fmt.Errorf("complete bids: %w", err)
	}
	return nil
}

func (t *pgTx) ListBids(ctx context.Context, f auction.BidFilter) ([]auction.Bid, error) {
	var (
		conds []string
		args  []any
	)
	if f.AuctionID != 0 {
		args = append(args, f.AuctionID)
		conds = append(conds, fmt.Sprintf("auction_id=$%d", len(args)))
	}
	if f.UserID != 0 {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if f.WinStatus != nil {
		args = append(args, string(*f.WinStatus))
		conds = append(conds, fmt.Sprintf("win_status=$%d", len(args)))
	}
	q := `SELECT ` + bidCols + ` FROM bids`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"

	rows, err := t.tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	out := make([]auction.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (t *pgTx) FinalizeBids(ctx context.Context, auctionID, winnerBidID int64) error {
	if _, err := t.tx.ExecContext(ctx, `
		UPDATE bids SET win_status = CASE WHEN id=$2 THEN 'Won' ELSE 'Lost' END
		WHERE auction_id=$1`, auctionID, winnerBidID); err != nil {
		return fmt.Errorf("finalize bids: %w", err)
	}
	return nil
}

func (t *pgTx) LockAccount(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if _, err := t.tx.ExecContext(ctx,
		`INSERT INTO fund_accounts(user_id, balance) VALUES($1, 0) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return decimal.Zero, fmt.Errorf("ensure account: %w", err)
	}
	var bal decimal.Decimal
	if err := t.tx.QueryRowContext(ctx,
		`SELECT balance FROM fund_accounts WHERE user_id=$1 FOR UPDATE`, userID).Scan(&bal); err != nil {
		return decimal.Zero, fmt.Errorf("lock account: %w", err)
	}
	return bal, nil
}

// AccountBalance leitura simples: não cria a conta nem trava a linha
func (t *pgTx) AccountBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var bal decimal.Decimal
	err := t.tx.QueryRowContext(ctx, `SELECT balance FROM fund_accounts WHERE user_id=$1`, userID).Scan(&bal)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("account balance: %w", err)
	}
	return bal, nil
}

func (t *pgTx) SetAccountBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE fund_accounts SET balance=$2, updated_at=NOW() WHERE user_id=$1`, userID, balance); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

// NextReference avança o contador do tipo com lock de linha
func (t *pgTx) NextReference(ctx context.Context, et auction.EntryType) (int64, error) {
	var n int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO ledger_sequences(entry_type, next_no) VALUES($1, 2)
		ON CONFLICT (entry_type) DO UPDATE SET next_no = ledger_sequences.next_no + 1
		RETURNING next_no - 1`, et).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next reference: %w", err)
	}
	return n, nil
}

func (t *pgTx) InsertLedgerEntry(ctx context.Context, e *auction.LedgerEntry) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO fund_ledger(user_id, entry_type, reference_no, direction, amount, balance, description, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		e.UserID, e.Type, e.ReferenceNo, e.Direction, e.Amount, e.Balance, e.Description, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func (t *pgTx) ListLedgerEntries(ctx context.Context, userID int64) ([]auction.LedgerEntry, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, user_id, entry_type, reference_no, direction, amount, balance, description, created_at
		FROM fund_ledger WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()

	out := make([]auction.LedgerEntry, 0)
	for rows.Next() {
		var e auction.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.ReferenceNo, &e.Direction, &e.Amount, &e.Balance,
			&e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const chargeCols = `id, auction_id, vehicle_id, bid_id, user_id, seller_id, amount, reference_no, status,
	provider_ref, reason, created_at, settled_at`

func scanCharge(r rowScanner) (auction.Charge, error) {
	var (
		c         auction.Charge
		provider  sql.NullString
		reason    sql.NullString
		settledAt sql.NullTime
	)
	if err := r.Scan(&c.ID, &c.AuctionID, &c.VehicleID, &c.BidID, &c.UserID, &c.SellerID, &c.Amount, &c.ReferenceNo,
		&c.Status, &provider, &reason, &c.CreatedAt, &settledAt); err != nil {
		return auction.Charge{}, err
	}
	c.ProviderRef = provider.String
	c.Reason = reason.String
	if settledAt.Valid {
		c.SettledAt = &settledAt.Time
	}
	return c, nil
}

func (t *pgTx) InsertCharge(ctx context.Context, c auction.Charge) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO charge_requests(id, auction_id, vehicle_id, bid_id, user_id, seller_id, amount, reference_no,
			status, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.AuctionID, c.VehicleID, c.BidID, c.UserID, c.SellerID, c.Amount, c.ReferenceNo, c.Status, c.CreatedAt)
	if isUniqueViolation(err, "charge_requests_one_per_auction") {
		return auction.ErrAlreadyClosed
	}
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	return nil
}

func (t *pgTx) GetCharge(ctx context.Context, id string, lock bool) (auction.Charge, error) {
	q := `SELECT ` + chargeCols + ` FROM charge_requests WHERE id=$1`
	if lock {
		q += " FOR UPDATE"
	}
	c, err := scanCharge(t.tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return auction.Charge{}, auction.ErrChargeNotFound
	}
	if err != nil {
		// id fora do formato uuid também é "não encontrado"
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			return auction.Charge{}, auction.ErrChargeNotFound
		}
		return auction.Charge{}, fmt.Errorf("get charge: %w", err)
	}
	return c, nil
}

func (t *pgTx) UpdateCharge(ctx context.Context, c auction.Charge) error {
	var settledAt sql.NullTime
	if c.SettledAt != nil {
		settledAt = sql.NullTime{Time: *c.SettledAt, Valid: true}
	}
	res, err := t.tx.ExecContext(ctx, `
		UPDATE charge_requests SET status=$2, provider_ref=$3, reason=$4, settled_at=$5 WHERE id=$1`,
		c.ID, c.Status, nullString(c.ProviderRef), nullString(c.Reason), settledAt)
	if err != nil {
		return fmt.Errorf("update charge: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return auction.ErrChargeNotFound
	}
	return nil
}

func (t *pgTx) ListCharges(ctx context.Context, status auction.ChargeStatus, createdBefore time.Time) ([]auction.Charge, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT `+chargeCols+` FROM charge_requests WHERE status=$1 AND created_at<$2 ORDER BY created_at`,
		status, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}
	defer rows.Close()

	out := make([]auction.Charge, 0)
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan charge: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString { return sql.NullString{String: s, Valid: s != ""} }
