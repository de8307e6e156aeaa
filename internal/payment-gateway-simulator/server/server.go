package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/internal/payment-gateway-simulator/dto"
)

// Server gateway de pagamento simulado (mock)
// Respostas são memorizadas pelo Idempotency-Key: reenvios recebem o mesmo resultado
type Server struct {
	log         *zap.Logger
	captureRate int // % de cobranças capturadas
	roll        func() int

	mu   sync.Mutex
	seen map[string]dto.ChargeResp

	charges *prometheus.CounterVec
	replays prometheus.Counter
}

// New captureRate entre 0 e 100; reg nil não registra métricas
func New(log *zap.Logger, captureRate int, reg prometheus.Registerer) *Server {
	s := &Server{
		log:         log,
		captureRate: captureRate,
		roll:        func() int { return rand.Intn(100) },
		seen:        make(map[string]dto.ChargeResp),
		charges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_charges_total",
			Help: "Cobranças processadas por status",
		}, []string{"status"}),
		replays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gateway_idempotent_replays_total",
			Help: "Reenvios respondidos a partir do Idempotency-Key",
		}),
	}
	if reg != nil {
		reg.MustRegister(s.charges, s.replays)
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/v1/charges", s.charge)
	return r
}

func (s *Server) charge(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req dto.ChargeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	key := r.Header.Get(dto.IdempotencyHeader)
	if key == "" {
		key = req.ChargeID
	}
	if key == "" || !req.Amount.IsPositive() {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	resp, replay := s.seen[key]
	if !replay {
		resp = dto.ChargeResp{Status: dto.StatusCaptured, ProviderRef: "GW-" + uuid.NewString()[:8]}
		if s.roll() >= s.captureRate {
			resp.Status = dto.StatusDeclined
			resp.Reason = "card_declined_mock"
		}
		s.seen[key] = resp
	}
	s.mu.Unlock()

	if replay {
		s.replays.Inc()
	} else {
		s.charges.WithLabelValues(resp.Status).Inc()
		s.log.Info("charge processed",
			zap.String("charge_id", req.ChargeID),
			zap.String("reference_no", req.ReferenceNo),
			zap.String("amount", req.Amount.String()),
			zap.String("status", resp.Status),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
