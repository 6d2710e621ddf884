package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hackfest/internal/models/db_models"
)

type PaymentRepository interface {
	Create(ctx context.Context, attempt *db_models.PaymentAttempt) error
	FindByGatewayOrderID(ctx context.Context, orderID string) (*db_models.PaymentAttempt, error)
	Update(ctx context.Context, attempt *db_models.PaymentAttempt) error

	// DeleteOtherPending removes every pending attempt of userID except
	// keepID. Idempotent; never touches non-pending rows.
	DeleteOtherPending(ctx context.Context, userID uuid.UUID, keepID uuid.UUID) (int64, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentAttempt, error)
	ListByStatus(ctx context.Context, status db_models.PaymentStatus) ([]db_models.PaymentAttempt, error)

	// ListSuccessWithUnboardedOwner finds success attempts whose owner is
	// still not boarded, for the reconciliation sweep.
	ListSuccessWithUnboardedOwner(ctx context.Context) ([]db_models.PaymentAttempt, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, attempt *db_models.PaymentAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *paymentRepository) FindByGatewayOrderID(ctx context.Context, orderID string) (*db_models.PaymentAttempt, error) {
	var attempt db_models.PaymentAttempt
	err := r.db.WithContext(ctx).First(&attempt, "gateway_order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *paymentRepository) Update(ctx context.Context, attempt *db_models.PaymentAttempt) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}

func (r *paymentRepository) DeleteOtherPending(ctx context.Context, userID uuid.UUID, keepID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND id <> ?",
			userID, db_models.PaymentStatusPending, keepID).
		Delete(&db_models.PaymentAttempt{})
	return res.RowsAffected, res.Error
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentAttempt, error) {
	var attempts []db_models.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status db_models.PaymentStatus) ([]db_models.PaymentAttempt, error) {
	var attempts []db_models.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *paymentRepository) ListSuccessWithUnboardedOwner(ctx context.Context) ([]db_models.PaymentAttempt, error) {
	var attempts []db_models.PaymentAttempt
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = payment_attempts.user_id").
		Where("payment_attempts.status = ? AND users.is_boarding = FALSE",
			db_models.PaymentStatusSuccess).
		Find(&attempts).Error
	return attempts, err
}
