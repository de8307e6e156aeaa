package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
)

// Metrics contadores do auction-service ligados ao Service via Hooks
type Metrics struct {
	Opened     prometheus.Counter
	Bids       *prometheus.CounterVec
	Closed     prometheus.Counter
	WinAmount  prometheus.Histogram
	Promoted   prometheus.Counter
	Postings   *prometheus.CounterVec
	Reconciled *prometheus.CounterVec
	Errors     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Opened: prometheus.NewCounter(prometheus.CounterOpts{Name: "auction_opened_total", Help: "leilões abertos"}),
		Bids: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "auction_bids_total", Help: "lances aceitos por tipo e revisão"},
			[]string{"kind", "revised"}),
		Closed: prometheus.NewCounter(prometheus.CounterOpts{Name: "auction_closed_total", Help: "leilões fechados com vencedor"}),
		WinAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "auction_winning_amount",
			Help:    "valor do lance vencedor",
			Buckets: prometheus.ExponentialBuckets(1000, 4, 8),
		}),
		Promoted: prometheus.NewCounter(prometheus.CounterOpts{Name: "auction_promoted_total", Help: "leilões promovidos para live pelo sweep"}),
		Postings: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "auction_ledger_postings_total", Help: "lançamentos no ledger por tipo"},
			[]string{"entry_type"}),
		Reconciled: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "auction_charges_reconciled_total", Help: "cobranças conciliadas por status"},
			[]string{"status"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "auction_errors_total", Help: "erros por operação e classe"},
			[]string{"op", "kind"}),
	}
	reg.MustRegister(m.Opened, m.Bids, m.Closed, m.WinAmount, m.Promoted, m.Postings, m.Reconciled, m.Errors)
	return m
}

// Hooks callbacks para auction.WithHooks
func (m *Metrics) Hooks() auction.Hooks {
	return auction.Hooks{
		OnOpen: func() { m.Opened.Inc() },
		OnBid: func(kind auction.BidKind, revised bool) {
			r := "false"
			if revised {
				r = "true"
			}
			m.Bids.WithLabelValues(string(kind), r).Inc()
		},
		OnClose: func(amount decimal.Decimal) {
			m.Closed.Inc()
			m.WinAmount.Observe(amount.InexactFloat64())
		},
		OnPromote:   func(n int) { m.Promoted.Add(float64(n)) },
		OnPosting:   func(t auction.EntryType) { m.Postings.WithLabelValues(string(t)).Inc() },
		OnReconcile: func(s auction.ChargeStatus) { m.Reconciled.WithLabelValues(string(s)).Inc() },
		OnError:     func(op string, k auction.Kind) { m.Errors.WithLabelValues(op, k.String()).Inc() },
	}
}
