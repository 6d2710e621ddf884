package policy_fx

import (
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"hackfest/pkg/logger"
	"hackfest/pkg/policy"
)

var Module = fx.Provide(providePolicy)

// 100 requests per minute per client, burst of 50.
func providePolicy() policy.Policy {
	return policy.NewLimiterPolicy(rate.Limit(100.0/60.0), 50, logger.Log)
}
