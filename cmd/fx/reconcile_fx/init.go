package reconcile_fx

import (
	"context"
	"os"
	"time"

	"go.uber.org/fx"

	"hackfest/internal/repositories"
	"hackfest/internal/services"
	"hackfest/pkg/logger"
	"hackfest/pkg/policy"
)

var Module = fx.Options(
	fx.Provide(provideReconcileService),
	fx.Invoke(startSweeps),
)

func provideReconcileService(
	users repositories.UserRepository,
	payments repositories.PaymentRepository,
	pol policy.Policy,
) services.ReconcileService {
	return services.NewReconcileService(users, payments, pol, logger.Log)
}

func startSweeps(lc fx.Lifecycle, reconciler services.ReconcileService) {
	interval := 5 * time.Minute
	if raw := os.Getenv("RECONCILE_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			parsed = max(parsed, time.Minute)
			interval = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go reconciler.Run(ctx, interval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
