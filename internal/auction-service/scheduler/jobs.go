package scheduler

import (
	"context"
	"time"
)

// Sweeper operações periódicas do auction-service
type Sweeper interface {
	PromoteScheduled(ctx context.Context) (int, error)
	RepublishPendingCharges(ctx context.Context, olderThan time.Duration) (int, error)
}

// Schedule registra o sweep de promoção e o republish de cobranças pendentes
func Schedule(r *Runner, s Sweeper, promoteSpec, republishSpec string, republishAfter time.Duration) error {
	if _, err := r.Add("promote", promoteSpec, func(ctx context.Context) error {
		_, err := s.PromoteScheduled(ctx)
		return err
	}); err != nil {
		return err
	}
	_, err := r.Add("republish_charges", republishSpec, func(ctx context.Context) error {
		_, err := s.RepublishPendingCharges(ctx, republishAfter)
		return err
	})
	return err
}
