package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/vehicle-auction-poc/pkg/contracts/events"
)

// MessageWriter subconjunto de *kafka.Writer usado aqui
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher publica os eventos do leilão, um writer por tópico
// Chave = vehicle_id para manter a ordem por veículo na partição
type KafkaPublisher struct {
	Opened MessageWriter
	Bids   MessageWriter
	Closed MessageWriter
}

func NewKafkaPublisher(opened, bids, closed MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Opened: opened, Bids: bids, Closed: closed}
}

func (p *KafkaPublisher) PublishAuctionOpened(ctx context.Context, e events.AuctionOpened) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Opened, e.VehicleID, e)
}

func (p *KafkaPublisher) PublishBidPlaced(ctx context.Context, e events.BidPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Bids, e.VehicleID, e)
}

func (p *KafkaPublisher) PublishAuctionClosed(ctx context.Context, e events.AuctionClosed) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Closed, e.VehicleID, e)
}

func write(ctx context.Context, w MessageWriter, vehicleID int64, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(vehicleID, 10)),
		Value: b,
		Time:  time.Now(),
	})
}
