package auction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/pkg/contracts/events"
)

// Hooks callbacks de métricas; todas opcionais e disparadas só após o commit
type Hooks struct {
	OnOpen      func()
	OnBid       func(kind BidKind, revised bool)
	OnClose     func(amount decimal.Decimal)
	OnPromote   func(n int)
	OnPosting   func(t EntryType)
	OnReconcile func(status ChargeStatus)
	OnError     func(op string, kind Kind)
}

// Service controla o ciclo de vida dos leilões e o ledger de fundos
// Toda coordenação entre requisições concorrentes acontece nas transações do Store
type Service struct {
	store Store
	log   *zap.Logger
	pub   Publisher
	cache SnapshotCache
	hooks Hooks
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.pub = p
		}
	}
}

func WithCache(c SnapshotCache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

func WithHooks(h Hooks) Option { return func(s *Service) { s.hooks = h } }

// WithClock substitui time.Now (testes)
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		store: store,
		log:   log,
		pub:   nopPublisher{},
		cache: nopCache{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OpenAuction abre o leilão de um veículo ativo; sellerOffer vem do buyNowPrice
func (s *Service) OpenAuction(ctx context.Context, p OpenParams) (Auction, error) {
	const op = "open_auction"
	if p.VehicleID <= 0 || p.SellerID <= 0 {
		return Auction{}, s.fail(op, ErrInvalidInput)
	}
	now := s.now().UTC()
	if p.StartTime.IsZero() || !p.StartTime.Before(p.EndTime) || !p.EndTime.After(now) {
		return Auction{}, s.fail(op, ErrInvalidWindow)
	}

	var a Auction
	err := s.store.InTx(ctx, func(tx Tx) error {
		v, err := tx.GetVehicle(ctx, p.VehicleID, true)
		if err != nil {
			return err
		}
		if v.VehicleStatus != VehicleActive {
			return ErrVehicleUnavailable
		}
		if v.SaleStatus == SaleSold {
			return ErrVehicleSold
		}

		cur, err := tx.CurrentAuction(ctx, p.VehicleID, LockUpdate)
		switch {
		case err == nil && cur.Status.Open():
			return ErrAuctionExists
		case err != nil && !errors.Is(err, ErrAuctionNotFound):
			return err
		}

		status := StatusUpcoming
		if !p.StartTime.After(now) {
			status = StatusLive
		}
		a = Auction{
			VehicleID:   v.ID,
			SellerID:    p.SellerID,
			SellerOffer: v.BuyNowPrice,
			StartTime:   p.StartTime.UTC(),
			EndTime:     p.EndTime.UTC(),
			Status:      status,
			BidApproval: ApprovalOngoing,
			SaleStatus:  SaleUpcoming,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.InsertAuction(ctx, &a); err != nil {
			return err
		}
		return tx.SetVehicleSaleStatus(ctx, v.ID, SaleUpcoming)
	})
	if err != nil {
		return Auction{}, s.fail(op, fmt.Errorf("open auction: %w", err))
	}

	s.forget(ctx, a.VehicleID)
	if perr := s.pub.PublishAuctionOpened(ctx, events.AuctionOpened{
		EventID:     s.newID(),
		AuctionID:   a.ID,
		VehicleID:   a.VehicleID,
		SellerID:    a.SellerID,
		SellerOffer: a.SellerOffer,
		Status:      string(a.Status),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
	}); perr != nil {
		s.log.Warn("publish auction_opened failed", zap.Int64("auction_id", a.ID), zap.Error(perr))
	}
	if s.hooks.OnOpen != nil {
		s.hooks.OnOpen()
	}
	s.log.Info("auction opened",
		zap.Int64("auction_id", a.ID),
		zap.Int64("vehicle_id", a.VehicleID),
		zap.String("status", string(a.Status)),
	)
	return a, nil
}

// offer valida a submissão antes de qualquer acesso ao banco
func (p BidParams) offer() (BidKind, decimal.Decimal, error) {
	if (p.MaxBid == nil) == (p.MonsterBid == nil) {
		return "", decimal.Zero, ErrInvalidBidKind
	}
	kind, amount := KindMax, p.MaxBid
	if p.MonsterBid != nil {
		kind, amount = KindMonster, p.MonsterBid
	}
	if !amount.IsPositive() {
		return "", decimal.Zero, ErrInvalidAmount
	}
	return kind, *amount, nil
}

// PlaceOrReviseBid cria o lance do usuário ou revisa o existente (mesmo tipo)
func (s *Service) PlaceOrReviseBid(ctx context.Context, p BidParams) (Bid, error) {
	const op = "place_bid"
	if p.UserID <= 0 || p.VehicleID <= 0 {
		return Bid{}, s.fail(op, ErrInvalidInput)
	}
	kind, amount, err := p.offer()
	if err != nil {
		return Bid{}, s.fail(op, err)
	}

	now := s.now().UTC()
	var (
		bid     Bid
		revised bool
	)
	err = s.store.InTx(ctx, func(tx Tx) error {
		v, err := tx.GetVehicle(ctx, p.VehicleID, false)
		if err != nil {
			return err
		}
		if v.VehicleStatus != VehicleActive {
			return ErrVehicleUnavailable
		}

		a, err := s.lockForBid(ctx, tx, p.VehicleID)
		if err != nil {
			return err
		}
		if !a.Status.Open() || a.BidApproval == ApprovalCompleted || !now.Before(a.EndTime) {
			return ErrAuctionClosed
		}
		if a.SellerID == p.UserID {
			return ErrSellerBid
		}
		if amount.LessThan(a.SellerOffer) {
			return ErrBidBelowFloor
		}
		if a.Status == StatusUpcoming {
			a.Status = StatusLive
			a.UpdatedAt = now
			if err := tx.UpdateAuction(ctx, a); err != nil {
				return err
			}
		}

		existing, err := tx.GetBid(ctx, a.ID, p.UserID)
		switch {
		case err == nil:
		case errors.Is(err, ErrBidNotFound):
			bid = Bid{
				AuctionID:   a.ID,
				VehicleID:   a.VehicleID,
				UserID:      p.UserID,
				SellerOffer: a.SellerOffer,
				Status:      a.Status,
				BidApproval: ApprovalOngoing,
				SaleStatus:  SaleUpcoming,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			bid.setOffer(kind, amount, now)
			err = tx.InsertBid(ctx, &bid)
			if err == nil {
				return nil
			}
			if !errors.Is(err, ErrDuplicateBid) {
				return err
			}
			// outra requisição do mesmo usuário inseriu primeiro: vira revisão
			if existing, err = tx.GetBid(ctx, a.ID, p.UserID); err != nil {
				return err
			}
		default:
			return err
		}

		if existing.Kind != kind {
			return ErrBidKindChange
		}
		// a revisão refaz a submissão: o desempate passa a usar o novo horário
		existing.setOffer(kind, amount, now)
		existing.Status = a.Status
		existing.UpdatedAt = now
		if err := tx.UpdateBid(ctx, existing); err != nil {
			return err
		}
		bid, revised = existing, true
		return nil
	})
	if err != nil {
		return Bid{}, s.fail(op, fmt.Errorf("place bid: %w", err))
	}

	s.forget(ctx, bid.VehicleID)
	if perr := s.pub.PublishBidPlaced(ctx, events.BidPlaced{
		EventID:   s.newID(),
		BidID:     bid.ID,
		AuctionID: bid.AuctionID,
		VehicleID: bid.VehicleID,
		UserID:    bid.UserID,
		Kind:      string(bid.Kind),
		YourOffer: bid.YourOffer,
		Revised:   revised,
	}); perr != nil {
		s.log.Warn("publish bid_placed failed", zap.Int64("bid_id", bid.ID), zap.Error(perr))
	}
	if s.hooks.OnBid != nil {
		s.hooks.OnBid(bid.Kind, revised)
	}
	s.log.Debug("bid accepted",
		zap.Int64("auction_id", bid.AuctionID),
		zap.Int64("user_id", bid.UserID),
		zap.String("offer", bid.YourOffer.String()),
		zap.Bool("revised", revised),
	)
	return bid, nil
}

// lockForBid trava o leilão em modo compartilhado; se ainda estiver upcoming,
// usa lock exclusivo porque o lance vai promovê-lo
func (s *Service) lockForBid(ctx context.Context, tx Tx, vehicleID int64) (Auction, error) {
	peek, err := tx.CurrentAuction(ctx, vehicleID, LockNone)
	if err != nil {
		return Auction{}, err
	}
	mode := LockShare
	if peek.Status == StatusUpcoming {
		mode = LockUpdate
	}
	a, err := tx.CurrentAuction(ctx, vehicleID, mode)
	if err != nil {
		return Auction{}, err
	}
	if a.Status == StatusUpcoming && mode != LockUpdate {
		return tx.CurrentAuction(ctx, vehicleID, LockUpdate)
	}
	return a, nil
}

// CloseAuction resolve o vencedor, marca a venda e lança o settlement numa única transação
// Nunca é re-tentado: um segundo fechamento devolve ErrAlreadyClosed
func (s *Service) CloseAuction(ctx context.Context, vehicleID int64) (Bid, error) {
	const op = "close_auction"
	if vehicleID <= 0 {
		return Bid{}, s.fail(op, ErrInvalidInput)
	}

	now := s.now().UTC()
	var (
		a      Auction
		winner Bid
		charge Charge
		posted []EntryType
	)
	err := s.store.InTx(ctx, func(tx Tx) error {
		// mesma ordem de locks do OpenAuction: veículo, depois leilão
		if _, err := tx.GetVehicle(ctx, vehicleID, true); err != nil {
			return err
		}
		var err error
		if a, err = tx.CurrentAuction(ctx, vehicleID, LockUpdate); err != nil {
			return err
		}
		if !a.Status.CanTransitionTo(StatusEnd) {
			return ErrAlreadyClosed
		}
		if err := tx.CompleteBids(ctx, a.ID); err != nil {
			return err
		}
		bids, err := tx.ListBids(ctx, BidFilter{AuctionID: a.ID})
		if err != nil {
			return err
		}
		w, ok := PickWinner(bids)
		if !ok {
			return ErrNoBids
		}
		if err := tx.FinalizeBids(ctx, a.ID, w.ID); err != nil {
			return err
		}

		a.Status = StatusEnd
		a.BidApproval = ApprovalCompleted
		a.SaleStatus = SaleSold
		a.WinnerBidID = &w.ID
		a.ClosedAt = &now
		a.UpdatedAt = now
		if err := tx.UpdateAuction(ctx, a); err != nil {
			return err
		}
		if err := tx.SetVehicleSaleStatus(ctx, a.VehicleID, SaleSold); err != nil {
			return err
		}

		winner = w
		charge, posted, err = s.settle(ctx, tx, a, w, now)
		return err
	})
	if err != nil {
		return Bid{}, s.fail(op, fmt.Errorf("close auction: %w", err))
	}

	winner.Status = StatusEnd
	winner.BidApproval = ApprovalCompleted
	winner.WinStatus = WinWon
	winner.SaleStatus = SaleSold

	s.forget(ctx, vehicleID)
	if perr := s.pub.PublishAuctionClosed(ctx, closedEvent(s.newID(), charge, now)); perr != nil {
		// a cobrança continua requested e é reemitida pelo sweep de republish
		s.log.Warn("publish auction_closed failed", zap.String("charge_id", charge.ID), zap.Error(perr))
	}
	s.posted(posted)
	if s.hooks.OnClose != nil {
		s.hooks.OnClose(winner.YourOffer)
	}
	s.log.Info("auction closed",
		zap.Int64("auction_id", a.ID),
		zap.Int64("vehicle_id", a.VehicleID),
		zap.Int64("winner_bid_id", winner.ID),
		zap.Int64("winner_user_id", winner.UserID),
		zap.String("amount", winner.YourOffer.String()),
		zap.String("charge_id", charge.ID),
	)
	return winner, nil
}

// PromoteScheduled move para live todo leilão upcoming cujo startTime já chegou
func (s *Service) PromoteScheduled(ctx context.Context) (int, error) {
	const op = "promote"
	now := s.now().UTC()
	var promoted []Auction
	err := s.store.InTx(ctx, func(tx Tx) error {
		promoted = promoted[:0]
		due, err := tx.ListAuctions(ctx, AuctionFilter{Status: StatusUpcoming, StartedBy: now, Lock: true})
		if err != nil {
			return err
		}
		for _, a := range due {
			a.Status = StatusLive
			a.UpdatedAt = now
			if err := tx.UpdateAuction(ctx, a); err != nil {
				return err
			}
			promoted = append(promoted, a)
		}
		return nil
	})
	if err != nil {
		return 0, s.fail(op, fmt.Errorf("promote scheduled: %w", err))
	}

	for _, a := range promoted {
		s.forget(ctx, a.VehicleID)
	}
	if s.hooks.OnPromote != nil {
		s.hooks.OnPromote(len(promoted))
	}
	if len(promoted) > 0 {
		s.log.Info("auctions promoted", zap.Int("count", len(promoted)))
	}
	return len(promoted), nil
}

// GetAuction devolve o leilão corrente do veículo com contagem e lance líder (cache-aside)
func (s *Service) GetAuction(ctx context.Context, vehicleID int64) (AuctionView, error) {
	const op = "get_auction"
	if vehicleID <= 0 {
		return AuctionView{}, s.fail(op, ErrInvalidInput)
	}

	var view AuctionView
	// version lida antes do store: um Forget concorrente invalida o Set abaixo
	hit, version, err := s.cache.Get(ctx, vehicleID, &view)
	if err != nil {
		s.log.Warn("snapshot cache get failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
	} else if hit {
		return view, nil
	}
	view = AuctionView{}

	err = s.store.InTx(ctx, func(tx Tx) error {
		a, err := tx.CurrentAuction(ctx, vehicleID, LockNone)
		if err != nil {
			return err
		}
		bids, err := tx.ListBids(ctx, BidFilter{AuctionID: a.ID})
		if err != nil {
			return err
		}
		view = AuctionView{Auction: a, BidCount: len(bids)}
		if lead, ok := PickWinner(bids); ok {
			view.Leading = &lead
		}
		return nil
	})
	if err != nil {
		return AuctionView{}, s.fail(op, fmt.Errorf("get auction: %w", err))
	}

	if err := s.cache.Set(ctx, vehicleID, version, view); err != nil {
		s.log.Warn("snapshot cache set failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
	}
	return view, nil
}

// AuctionBids lances do leilão corrente do veículo, do maior para o menor (ordem do vencedor)
func (s *Service) AuctionBids(ctx context.Context, vehicleID int64) ([]Bid, error) {
	const op = "auction_bids"
	if vehicleID <= 0 {
		return nil, s.fail(op, ErrInvalidInput)
	}
	var out []Bid
	err := s.store.InTx(ctx, func(tx Tx) error {
		a, err := tx.CurrentAuction(ctx, vehicleID, LockNone)
		if err != nil {
			return err
		}
		out, err = tx.ListBids(ctx, BidFilter{AuctionID: a.ID})
		return err
	})
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("auction bids: %w", err))
	}
	sort.SliceStable(out, func(i, j int) bool { return outranks(out[i], out[j]) })
	return out, nil
}

// Totals contadores do painel: leilões live, lances e veículos
func (s *Service) Totals(ctx context.Context) (Totals, error) {
	const op = "totals"
	var t Totals
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		t, err = tx.CountTotals(ctx)
		return err
	})
	if err != nil {
		return Totals{}, s.fail(op, fmt.Errorf("totals: %w", err))
	}
	return t, nil
}

// ListAuctions status vazio lista todos
func (s *Service) ListAuctions(ctx context.Context, status AuctionStatus) ([]Auction, error) {
	const op = "list_auctions"
	if status != "" && !status.Valid() {
		return nil, s.fail(op, ErrInvalidInput)
	}
	var out []Auction
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.ListAuctions(ctx, AuctionFilter{Status: status})
		return err
	})
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("list auctions: %w", err))
	}
	return out, nil
}

// UserBids lances do usuário; win filtra Won (lotes ganhos) ou Lost (perdidos)
func (s *Service) UserBids(ctx context.Context, userID int64, win *WinStatus) ([]Bid, error) {
	const op = "user_bids"
	if userID <= 0 || (win != nil && (*win == WinNone || !win.Valid())) {
		return nil, s.fail(op, ErrInvalidInput)
	}
	var out []Bid
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.ListBids(ctx, BidFilter{UserID: userID, WinStatus: win})
		return err
	})
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("user bids: %w", err))
	}
	return out, nil
}

func (s *Service) forget(ctx context.Context, vehicleID int64) {
	if err := s.cache.Forget(ctx, vehicleID); err != nil {
		s.log.Warn("snapshot cache forget failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
	}
}

func (s *Service) posted(types []EntryType) {
	if s.hooks.OnPosting == nil {
		return
	}
	for _, t := range types {
		s.hooks.OnPosting(t)
	}
}

// fail registra a classe do erro e devolve o próprio erro
func (s *Service) fail(op string, err error) error {
	kind := KindOf(err)
	if s.hooks.OnError != nil {
		s.hooks.OnError(op, kind)
	}
	if kind == KindStorage {
		s.log.Error("operation failed", zap.String("op", op), zap.Error(err))
	} else {
		s.log.Debug("operation rejected", zap.String("op", op), zap.String("kind", kind.String()), zap.Error(err))
	}
	return err
}

func closedEvent(eventID string, c Charge, closedAt time.Time) events.AuctionClosed {
	return events.AuctionClosed{
		EventID:      eventID,
		AuctionID:    c.AuctionID,
		VehicleID:    c.VehicleID,
		SellerID:     c.SellerID,
		BidID:        c.BidID,
		WinnerUserID: c.UserID,
		Amount:       c.Amount,
		ChargeID:     c.ID,
		ReferenceNo:  c.ReferenceNo,
		ClosedAt:     closedAt,
	}
}
