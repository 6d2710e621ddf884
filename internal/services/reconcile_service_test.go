package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"hackfest/internal/models/db_models"
	"hackfest/pkg/policy"
)

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Repairs Unboarded Owners Of Successful Payments", func(t *testing.T) {
		users := new(MockUserRepository)
		payments := new(MockPaymentRepository)
		pol := new(MockPolicy)
		svc := NewReconcileService(users, payments, pol, zap.NewNop())

		orphanA := pendingAttempt(uuid.New(), "order_a")
		orphanA.Status = db_models.PaymentStatusSuccess
		orphanB := pendingAttempt(uuid.New(), "order_b")
		orphanB.Status = db_models.PaymentStatusSuccess

		users.On("DeleteUnverifiedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once()
		payments.On("ListSuccessWithUnboardedOwner", ctx).
			Return([]db_models.PaymentAttempt{*orphanA, *orphanB}, nil).Once()
		users.On("MarkBoarded", ctx, orphanA.UserID).Return(nil).Once()
		users.On("MarkBoarded", ctx, orphanB.UserID).Return(nil).Once()
		pol.On("RecordEvent", mock.MatchedBy(func(e policy.Event) bool {
			return e.Kind == "boarding_repair"
		})).Times(2)

		svc.SweepOnce(ctx)

		users.AssertExpectations(t)
		payments.AssertExpectations(t)
		pol.AssertExpectations(t)
	})

	t.Run("Cutoff Is A Day Back", func(t *testing.T) {
		users := new(MockUserRepository)
		payments := new(MockPaymentRepository)
		svc := NewReconcileService(users, payments, new(MockPolicy), zap.NewNop())

		users.On("DeleteUnverifiedBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			age := time.Since(cutoff)
			return age > 23*time.Hour && age < 25*time.Hour
		})).Return(int64(0), nil).Once()
		payments.On("ListSuccessWithUnboardedOwner", ctx).
			Return([]db_models.PaymentAttempt{}, nil).Once()

		svc.SweepOnce(ctx)

		users.AssertExpectations(t)
	})

	t.Run("Scan Failure Skips Repairs", func(t *testing.T) {
		users := new(MockUserRepository)
		payments := new(MockPaymentRepository)
		svc := NewReconcileService(users, payments, new(MockPolicy), zap.NewNop())

		users.On("DeleteUnverifiedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()
		payments.On("ListSuccessWithUnboardedOwner", ctx).
			Return(nil, errors.New("conn reset")).Once()

		svc.SweepOnce(ctx)

		users.AssertNotCalled(t, "MarkBoarded", mock.Anything, mock.Anything)
	})
}
