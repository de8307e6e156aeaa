package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
)

// SnapshotCache guarda a AuctionView do veículo no Redis com TTL curto
// Cada Forget avança auction:version:{id}; Set só grava se a versão lida no Get
// ainda for a corrente, então uma leitura anterior a um commit não repõe snapshot velho
type SnapshotCache struct {
	R   *redis.Client
	TTL time.Duration
}

func NewSnapshotCache(r *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{R: r, TTL: ttl}
}

func keyVehicle(vehicleID int64) string {
	return "auction:snapshot:" + strconv.FormatInt(vehicleID, 10)
}

func keyVersion(vehicleID int64) string {
	return "auction:version:" + strconv.FormatInt(vehicleID, 10)
}

func (c *SnapshotCache) Get(ctx context.Context, vehicleID int64, dst *auction.AuctionView) (bool, int64, error) {
	vals, err := c.R.MGet(ctx, keyVehicle(vehicleID), keyVersion(vehicleID)).Result()
	if err != nil {
		return false, 0, err
	}
	version, err := parseVersion(vals[1])
	if err != nil {
		return false, 0, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return false, version, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, version, err
	}
	return true, version, nil
}

// Set grava sob WATCH da versão; versão diferente ou transação abortada descarta sem erro
func (c *SnapshotCache) Set(ctx context.Context, vehicleID, version int64, v auction.AuctionView) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	verKey := keyVersion(vehicleID)
	err = c.R.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, verKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		n, err := parseVersion(cur)
		if err != nil {
			return err
		}
		if n != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyVehicle(vehicleID), b, c.TTL)
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *SnapshotCache) Forget(ctx context.Context, vehicleID int64) error {
	_, err := c.R.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, keyVersion(vehicleID))
		pipe.Del(ctx, keyVehicle(vehicleID))
		return nil
	})
	return err
}

// parseVersion chave ausente é versão 0
func parseVersion(v any) (int64, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
