package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
	"github.com/radieske/vehicle-auction-poc/internal/auction-service/dto"
)

//go:generate mockgen -source=server.go -destination=mock_service_test.go -package=httpapi

// AuctionService operações do leilão e do ledger consumidas pelo transporte HTTP
type AuctionService interface {
	OpenAuction(ctx context.Context, p auction.OpenParams) (auction.Auction, error)
	PlaceOrReviseBid(ctx context.Context, p auction.BidParams) (auction.Bid, error)
	CloseAuction(ctx context.Context, vehicleID int64) (auction.Bid, error)
	PromoteScheduled(ctx context.Context) (int, error)
	GetAuction(ctx context.Context, vehicleID int64) (auction.AuctionView, error)
	ListAuctions(ctx context.Context, status auction.AuctionStatus) ([]auction.Auction, error)
	UserBids(ctx context.Context, userID int64, win *auction.WinStatus) ([]auction.Bid, error)
	AuctionBids(ctx context.Context, vehicleID int64) ([]auction.Bid, error)
	Totals(ctx context.Context) (auction.Totals, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (auction.LedgerEntry, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, description string) (auction.LedgerEntry, error)
	Statement(ctx context.Context, userID int64) (auction.Statement, error)
}

// Server expõe a API REST do auction-service
type Server struct {
	log     *zap.Logger
	svc     AuctionService
	timeout time.Duration
}

// NewServer timeout <= 0 desliga o limite por requisição
func NewServer(log *zap.Logger, svc AuctionService, timeout time.Duration) *Server {
	return &Server{log: log, svc: svc, timeout: timeout}
}

// Router retorna o roteador chi com as rotas /v1
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.timeout > 0 {
		r.Use(middleware.Timeout(s.timeout))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auctions", s.openAuction)
		r.Get("/auctions", s.listAuctions) // ?status=live|upcoming|end
		r.Post("/auctions/bids", s.placeBid)
		r.Post("/auctions/close", s.closeAuction)
		r.Post("/auctions/promote", s.promote)
		r.Get("/auctions/stats", s.totals)
		r.Get("/auctions/{vehicleId}", s.getAuction)
		r.Get("/auctions/{vehicleId}/bids", s.auctionBids)

		r.Get("/users/{userId}/bids", s.userBids) // ?winStatus=Won|Lost

		r.Post("/funds/deposit", s.deposit)
		r.Post("/funds/withdraw", s.withdraw)
		r.Get("/funds/{userId}", s.statement)
	})
	return r
}

func (s *Server) openAuction(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAuctionRequest
	if !decode(w, r, &req) {
		return
	}
	a, err := s.svc.OpenAuction(r.Context(), auction.OpenParams{
		VehicleID: req.VehicleID,
		SellerID:  req.SellerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuction(a))
}

func (s *Server) placeBid(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBidRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := s.svc.PlaceOrReviseBid(r.Context(), auction.BidParams{
		UserID:     req.UserID,
		VehicleID:  req.VehicleID,
		MaxBid:     req.MaxBid,
		MonsterBid: req.MonsterBid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBid(b))
}

func (s *Server) closeAuction(w http.ResponseWriter, r *http.Request) {
	var req dto.CloseAuctionRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := s.svc.CloseAuction(r.Context(), req.VehicleID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBid(b))
}

func (s *Server) promote(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.PromoteScheduled(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PromoteResponse{Promoted: n})
}

func (s *Server) listAuctions(w http.ResponseWriter, r *http.Request) {
	status := auction.AuctionStatus(r.URL.Query().Get("status"))
	list, err := s.svc.ListAuctions(r.Context(), status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]dto.AuctionResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAuction(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getAuction(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(w, r, "vehicleId")
	if !ok {
		return
	}
	v, err := s.svc.GetAuction(r.Context(), vehicleID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := dto.AuctionViewResponse{Auction: toAuction(v.Auction), BidCount: v.BidCount}
	if v.Leading != nil {
		lead := toBid(*v.Leading)
		resp.Leading = &lead
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) auctionBids(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(w, r, "vehicleId")
	if !ok {
		return
	}
	bids, err := s.svc.AuctionBids(r.Context(), vehicleID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBids(bids))
}

func (s *Server) totals(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Totals(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TotalsResponse{
		LiveAuctions: t.LiveAuctions,
		BidsPlaced:   t.BidsPlaced,
		Vehicles:     t.Vehicles,
	})
}

func (s *Server) userBids(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var win *auction.WinStatus
	if q := r.URL.Query().Get("winStatus"); q != "" {
		ws := auction.WinStatus(q)
		win = &ws
	}
	bids, err := s.svc.UserBids(r.Context(), userID, win)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBids(bids))
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.FundsRequest
	if !decode(w, r, &req) {
		return
	}
	e, err := s.svc.Deposit(r.Context(), req.UserID, req.Amount, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntry(e))
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.FundsRequest
	if !decode(w, r, &req) {
		return
	}
	e, err := s.svc.Withdraw(r.Context(), req.UserID, req.Amount, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntry(e))
}

func (s *Server) statement(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	st, err := s.svc.Statement(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := dto.StatementResponse{UserID: st.UserID, Balance: st.Balance, Entries: make([]dto.LedgerEntryResponse, 0, len(st.Entries))}
	for _, e := range st.Entries {
		resp.Entries = append(resp.Entries, toEntry(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// statusOf mapeia a classe do erro para o status HTTP
func statusOf(k auction.Kind) int {
	switch k {
	case auction.KindValidation:
		return http.StatusBadRequest
	case auction.KindNotFound:
		return http.StatusNotFound
	case auction.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := auction.KindOf(err)
	status := statusOf(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, dto.ErrorResponse{Error: msg, Kind: kind.String()})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json", Kind: auction.KindValidation.String()})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Kind: auction.KindValidation.String()})
		return 0, false
	}
	return id, true
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toAuction(a auction.Auction) dto.AuctionResponse {
	return dto.AuctionResponse{
		ID:            a.ID,
		VehicleID:     a.VehicleID,
		SellerID:      a.SellerID,
		SellerOffer:   a.SellerOffer,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		AuctionStatus: string(a.Status),
		BidApprStatus: string(a.BidApproval),
		SaleStatus:    string(a.SaleStatus),
		WinnerBidID:   a.WinnerBidID,
		ClosedAt:      a.ClosedAt,
	}
}

func toBid(b auction.Bid) dto.BidResponse {
	out := dto.BidResponse{
		ID:            b.ID,
		AuctionID:     b.AuctionID,
		VehicleID:     b.VehicleID,
		UserID:        b.UserID,
		BidKind:       string(b.Kind),
		YourOffer:     b.YourOffer,
		SellerOffer:   b.SellerOffer,
		AuctionStatus: string(b.Status),
		BidApprStatus: string(b.BidApproval),
		WinStatus:     string(b.WinStatus),
		SaleStatus:    string(b.SaleStatus),
		OfferedAt:     b.OfferedAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.MaxBid.Valid {
		v := b.MaxBid.Decimal
		out.MaxBid = &v
	}
	if b.MonsterBid.Valid {
		v := b.MonsterBid.Decimal
		out.MonsterBid = &v
	}
	return out
}

func toBids(bids []auction.Bid) []dto.BidResponse {
	out := make([]dto.BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, toBid(b))
	}
	return out
}

func toEntry(e auction.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:          e.ID,
		EntryType:   string(e.Type),
		ReferenceNo: e.ReferenceNo,
		Direction:   string(e.Direction),
		Amount:      e.Amount,
		Balance:     e.Balance,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
