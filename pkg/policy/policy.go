package policy

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Event records a security-relevant occurrence (rate-limit trip, signature
// mismatch, admin override) for later inspection.
type Event struct {
	Kind   string
	Key    string
	Detail string
	At     time.Time
}

// Policy is the injected collaborator for rate limiting and security events.
// The in-memory implementation below does not survive multi-instance
// deployments; swap in a shared store behind the same interface for that.
type Policy interface {
	IsAllowed(key string) bool
	RecordEvent(e Event)
}

const maxRecentEvents = 256

type limiterPolicy struct {
	mu     sync.Mutex
	keys   map[string]*rate.Limiter
	rate   rate.Limit
	burst  int
	events []Event
	logger *zap.Logger
}

func NewLimiterPolicy(r rate.Limit, burst int, logger *zap.Logger) Policy {
	return &limiterPolicy{
		keys:   make(map[string]*rate.Limiter),
		rate:   r,
		burst:  burst,
		logger: logger,
	}
}

func (p *limiterPolicy) IsAllowed(key string) bool {
	p.mu.Lock()
	limiter, exists := p.keys[key]
	if !exists {
		limiter = rate.NewLimiter(p.rate, p.burst)
		p.keys[key] = limiter
	}
	p.mu.Unlock()

	return limiter.Allow()
}

func (p *limiterPolicy) RecordEvent(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	p.mu.Lock()
	p.events = append(p.events, e)
	if len(p.events) > maxRecentEvents {
		p.events = p.events[len(p.events)-maxRecentEvents:]
	}
	p.mu.Unlock()

	p.logger.Warn("security event",
		zap.String("kind", e.Kind),
		zap.String("key", e.Key),
		zap.String("detail", e.Detail),
	)
}

// RecentEvents returns a copy of the retained event window, newest last.
func RecentEvents(p Policy) []Event {
	lp, ok := p.(*limiterPolicy)
	if !ok {
		return nil
	}
	lp.mu.Lock()
	defer lp.mu.Unlock()
	out := make([]Event, len(lp.events))
	copy(out, lp.events)
	return out
}
