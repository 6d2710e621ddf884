package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hackfest/internal/models/db_models"
	"hackfest/internal/repositories"
)

var _ repositories.PaymentRepository = (*memoryLedger)(nil)

// memoryLedger is an in-memory PaymentRepository for exercising the cleanup
// contract itself rather than just asserting it was invoked.
type memoryLedger struct {
	mu       sync.Mutex
	attempts []*db_models.PaymentAttempt
}

func (l *memoryLedger) Create(_ context.Context, attempt *db_models.PaymentAttempt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	l.attempts = append(l.attempts, attempt)
	return nil
}

func (l *memoryLedger) FindByGatewayOrderID(_ context.Context, orderID string) (*db_models.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.attempts {
		if a.GatewayOrderID == orderID {
			return a, nil
		}
	}
	return nil, nil
}

func (l *memoryLedger) Update(_ context.Context, _ *db_models.PaymentAttempt) error {
	return nil
}

func (l *memoryLedger) DeleteOtherPending(_ context.Context, userID uuid.UUID, keepID uuid.UUID) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var kept []*db_models.PaymentAttempt
	var removed int64
	for _, a := range l.attempts {
		if a.UserID == userID && a.Status == db_models.PaymentStatusPending && a.ID != keepID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	l.attempts = kept
	return removed, nil
}

func (l *memoryLedger) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []db_models.PaymentAttempt
	for _, a := range l.attempts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (l *memoryLedger) ListByStatus(_ context.Context, status db_models.PaymentStatus) ([]db_models.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []db_models.PaymentAttempt
	for _, a := range l.attempts {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (l *memoryLedger) ListSuccessWithUnboardedOwner(_ context.Context) ([]db_models.PaymentAttempt, error) {
	return nil, nil
}

func TestDeleteOtherPendingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	ledger := &memoryLedger{}

	keep := pendingAttempt(userID, "order_keep")
	staleA := pendingAttempt(userID, "order_stale_a")
	staleB := pendingAttempt(userID, "order_stale_b")
	failed := pendingAttempt(userID, "order_failed")
	failed.Status = db_models.PaymentStatusFailed
	foreign := pendingAttempt(otherUser, "order_foreign")

	for _, a := range []*db_models.PaymentAttempt{keep, staleA, staleB, failed, foreign} {
		assert.NoError(t, ledger.Create(ctx, a))
	}

	removed, err := ledger.DeleteOtherPending(ctx, userID, keep.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// A second run is a no-op.
	removed, err = ledger.DeleteOtherPending(ctx, userID, keep.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	// The kept pending row survives, terminal rows are untouched, and other
	// users' attempts are out of scope.
	mine, err := ledger.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	still, err := ledger.FindByGatewayOrderID(ctx, "order_keep")
	assert.NoError(t, err)
	assert.NotNil(t, still)
	assert.Equal(t, db_models.PaymentStatusPending, still.Status)

	terminal, err := ledger.FindByGatewayOrderID(ctx, "order_failed")
	assert.NoError(t, err)
	assert.NotNil(t, terminal)

	theirs, err := ledger.ListByUser(ctx, otherUser)
	assert.NoError(t, err)
	assert.Len(t, theirs, 1)
}
