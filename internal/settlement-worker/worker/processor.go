package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
	gwdto "github.com/radieske/vehicle-auction-poc/internal/payment-gateway-simulator/dto"
	sharedkafka "github.com/radieske/vehicle-auction-poc/internal/shared/kafka"
	"github.com/radieske/vehicle-auction-poc/pkg/contracts/events"
)

// Reader subconjunto de *kafka.Reader (fetch + commit explícito)
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Gateway interface {
	Charge(ctx context.Context, req gwdto.ChargeReq) (gwdto.ChargeResp, error)
}

// Settler concilia a cobrança no ledger (auction.Service)
type Settler interface {
	ReconcileCharge(ctx context.Context, chargeID string, out auction.ChargeOutcome) (auction.Charge, error)
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Processor consome auction_closed, cobra no gateway e concilia o resultado
// Falhas esgotadas vão para a DLQ; a mensagem é sempre commitada depois de tratada
type Processor struct {
	Log     *zap.Logger
	Reader  Reader
	Gateway Gateway
	Settler Settler
	DLQ     Writer // opcional

	Retries int           // re-tentativas após a primeira chamada
	Backoff time.Duration // linear: (i+1) * Backoff

	OnConsumed func()
	OnCharged  func(status string)
	OnDLQ      func(stage string)
	OnError    func(stage string)
}

// Run loop principal; retorna quando o contexto é cancelado
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka fetch failed", zap.Error(err))
			p.onError("read")
			if serr := sleepCtx(ctx, 500*time.Millisecond); serr != nil {
				return serr
			}
			continue
		}
		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		if err := p.Handle(ctx, m); err != nil {
			// só cancelamento chega aqui; a mensagem fica sem commit e volta no próximo start
			return err
		}
		if err := p.Reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("kafka commit failed", zap.Error(err))
			p.onError("commit")
		}
	}
}

// Handle processa uma mensagem; só devolve erro se o contexto for cancelado
func (p *Processor) Handle(ctx context.Context, m kafka.Message) error {
	var ev events.AuctionClosed
	if err := json.Unmarshal(m.Value, &ev); err != nil || ev.ChargeID == "" {
		p.Log.Warn("invalid auction_closed message", zap.Error(err))
		p.onError("decode")
		p.toDLQ(ctx, "decode", string(m.Key), m.Value)
		return nil
	}
	log := p.Log.With(zap.String("charge_id", ev.ChargeID), zap.Int64("auction_id", ev.AuctionID))

	req := gwdto.ChargeReq{
		ChargeID:    ev.ChargeID,
		ReferenceNo: ev.ReferenceNo,
		UserID:      ev.WinnerUserID,
		AuctionID:   ev.AuctionID,
		Amount:      ev.Amount,
	}
	var resp gwdto.ChargeResp
	err := p.retry(ctx, func() error {
		var cerr error
		resp, cerr = p.Gateway.Charge(ctx, req)
		return cerr
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("gateway charge failed", zap.Error(err))
		p.onError("gateway")
		p.toDLQ(ctx, "gateway", ev.ChargeID, m.Value)
		return nil
	}
	if p.OnCharged != nil {
		p.OnCharged(resp.Status)
	}

	out := auction.ChargeOutcome{
		Captured:    resp.Status == gwdto.StatusCaptured,
		ProviderRef: resp.ProviderRef,
		Reason:      resp.Reason,
	}
	var charge auction.Charge
	err = p.retry(ctx, func() error {
		var rerr error
		charge, rerr = p.Settler.ReconcileCharge(ctx, ev.ChargeID, out)
		// só erro de storage vale re-tentar
		if rerr != nil && auction.KindOf(rerr) != auction.KindStorage {
			return permanent{rerr}
		}
		return rerr
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("reconcile charge failed", zap.Error(err))
		p.onError("reconcile")
		p.toDLQ(ctx, "reconcile", ev.ChargeID, m.Value)
		return nil
	}

	log.Info("charge settled", zap.String("status", string(charge.Status)), zap.String("provider_ref", charge.ProviderRef))
	return nil
}

// permanent interrompe o retry
type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

func (p *Processor) retry(ctx context.Context, fn func() error) error {
	err := fn()
	for i := 0; err != nil && i < p.Retries; i++ {
		var perm permanent
		if errors.As(err, &perm) {
			return perm.err
		}
		if serr := sleepCtx(ctx, time.Duration(i+1)*p.Backoff); serr != nil {
			return serr
		}
		err = fn()
	}
	var perm permanent
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}

func (p *Processor) toDLQ(ctx context.Context, stage, key string, payload []byte) {
	if p.DLQ == nil {
		return
	}
	if err := sharedkafka.WriteJSON(ctx, p.DLQ, key, payload); err != nil {
		p.Log.Error("dlq write failed", zap.String("stage", stage), zap.Error(err))
		return
	}
	if p.OnDLQ != nil {
		p.OnDLQ(stage)
	}
}

func (p *Processor) onError(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
