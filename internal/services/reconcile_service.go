package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hackfest/internal/repositories"
	"hackfest/pkg/policy"
)

// Unverified accounts are removed after this long.
const unverifiedAccountTTL = 24 * time.Hour

// ReconcileService runs the low-frequency background sweeps:
//   - removes stale unverified registrations;
//   - repairs users whose payment succeeded but whose boarding flag never
//     flipped (a crash between mark-success and the flag update).
type ReconcileService interface {
	Run(ctx context.Context, interval time.Duration)
	SweepOnce(ctx context.Context)
}

type reconcileService struct {
	users    repositories.UserRepository
	payments repositories.PaymentRepository
	policy   policy.Policy
	logger   *zap.Logger
}

func NewReconcileService(
	users repositories.UserRepository,
	payments repositories.PaymentRepository,
	pol policy.Policy,
	logger *zap.Logger,
) ReconcileService {
	return &reconcileService{
		users:    users,
		payments: payments,
		policy:   pol,
		logger:   logger,
	}
}

func (r *reconcileService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.SweepOnce(ctx)
		}
	}
}

func (r *reconcileService) SweepOnce(ctx context.Context) {
	removed, err := r.users.DeleteUnverifiedBefore(ctx, time.Now().Add(-unverifiedAccountTTL))
	if err != nil {
		r.logger.Error("unverified registration sweep failed", zap.Error(err))
	} else if removed > 0 {
		r.logger.Info("removed stale unverified registrations", zap.Int64("count", removed))
	}

	orphans, err := r.payments.ListSuccessWithUnboardedOwner(ctx)
	if err != nil {
		r.logger.Error("boarding reconciliation scan failed", zap.Error(err))
		return
	}
	for i := range orphans {
		attempt := &orphans[i]
		if err := r.users.MarkBoarded(ctx, attempt.UserID); err != nil {
			r.logger.Error("boarding repair failed",
				zap.String("user_id", attempt.UserID.String()), zap.Error(err))
			continue
		}
		r.policy.RecordEvent(policy.Event{
			Kind:   "boarding_repair",
			Key:    attempt.UserID.String(),
			Detail: attempt.GatewayOrderID,
		})
	}
}
