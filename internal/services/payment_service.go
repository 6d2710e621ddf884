package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hackfest/internal/gateway"
	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/internal/models/response_models"
	"hackfest/internal/repositories"
	"hackfest/pkg/policy"
	"hackfest/pkg/utils"
)

type PaymentConfig struct {
	// ChecksumSecret keys the HMAC over "{orderID}|{paymentID}". Never sent
	// to clients.
	ChecksumSecret string
}

// PaymentService coordinates order creation, signature verification, ledger
// transitions, the boarding flag, and stale-pending cleanup.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, req request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error)
	MarkFailed(ctx context.Context, userID uuid.UUID, req request_models.PaymentFailureRequest) (*response_models.PaymentAttemptResponse, error)

	// SetStatus is the privileged override for out-of-band reconciliation.
	// It bypasses signature verification and must stay behind the admin gate.
	SetStatus(ctx context.Context, req request_models.SetPaymentStatusRequest) (*response_models.PaymentAttemptResponse, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.PaymentAttemptResponse, error)
	ListByStatus(ctx context.Context, status string) ([]response_models.PaymentAttemptResponse, error)
}

type paymentService struct {
	payments repositories.PaymentRepository
	users    repositories.UserRepository
	gateway  gateway.Client
	mailer   IMailService
	policy   policy.Policy
	cfg      PaymentConfig
	logger   *zap.Logger
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	users repositories.UserRepository,
	gw gateway.Client,
	mailer IMailService,
	pol policy.Policy,
	cfg PaymentConfig,
	logger *zap.Logger,
) (PaymentService, error) {
	if cfg.ChecksumSecret == "" {
		return nil, fmt.Errorf("missing payment checksum secret")
	}

	return &paymentService{
		payments: payments,
		users:    users,
		gateway:  gw,
		mailer:   mailer,
		policy:   pol,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (p *paymentService) CreateOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	currency := strings.ToUpper(req.Currency)
	receipt := "rcpt_" + uuid.New().String()[:30]

	// Gateway first: if the order cannot be minted, no ledger row exists.
	order, err := p.gateway.CreateOrder(ctx, req.Amount*gateway.MinorUnitFactor, currency, receipt)
	if err != nil {
		p.logger.Warn("gateway order creation failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	snapshot, _ := json.Marshal(map[string]any{
		"gateway_order_id": order.ID,
		"amount_minor":     order.AmountMinor,
		"receipt":          order.Receipt,
	})

	attempt := &db_models.PaymentAttempt{
		UserID:         userID,
		GatewayOrderID: order.ID,
		Status:         db_models.PaymentStatusPending,
		Amount:         req.Amount,
		Currency:       currency,
		IsEarlyBird:    req.IsEarlyBird,
		OrderSnapshot:  datatypes.JSON(snapshot),
	}

	if err := p.payments.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create payment attempt: %w", err)
	}

	return &response_models.CreateOrderResponse{
		PaymentAttemptID: attempt.ID.String(),
		GatewayOrderID:   order.ID,
		Amount:           attempt.Amount,
		Currency:         attempt.Currency,
		IsEarlyBird:      attempt.IsEarlyBird,
	}, nil
}

func (p *paymentService) VerifyPayment(ctx context.Context, userID uuid.UUID, req request_models.VerifyPaymentRequest) (*response_models.VerifyPaymentResponse, error) {
	// Signature check comes before any lookup; a mismatch mutates nothing.
	if !utils.VerifyPaymentSignature(p.cfg.ChecksumSecret, req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		p.policy.RecordEvent(policy.Event{
			Kind:   "signature_mismatch",
			Key:    userID.String(),
			Detail: req.GatewayOrderID,
		})
		return nil, utils.ErrSignatureMismatch
	}

	attempt, err := p.payments.FindByGatewayOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if attempt == nil {
		return nil, utils.ErrPaymentNotFound
	}
	if attempt.Status != db_models.PaymentStatusPending {
		// Terminal state already reached; report it back with the conflict,
		// never overwrite. No token is reissued on the duplicate call.
		return &response_models.VerifyPaymentResponse{
			Payment: toAttemptResponse(attempt),
		}, utils.ErrAlreadyProcessed
	}

	attempt.Status = db_models.PaymentStatusSuccess
	attempt.GatewayPaymentID = req.GatewayPaymentID
	attempt.GatewaySignature = req.GatewaySignature
	if err := p.payments.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("mark success: %w", err)
	}

	// Mark-success happens-before cleanup and the boarding flip. A crash in
	// between is repaired by the reconciliation sweep.
	if _, err := p.payments.DeleteOtherPending(ctx, attempt.UserID, attempt.ID); err != nil {
		p.logger.Error("stale pending cleanup failed",
			zap.String("order_id", attempt.GatewayOrderID), zap.Error(err))
	}

	if err := p.users.MarkBoarded(ctx, attempt.UserID); err != nil {
		p.logger.Error("boarding flag update failed",
			zap.String("user_id", attempt.UserID.String()), zap.Error(err))
	}

	// The transition has committed; nothing past this point may fail the
	// call. A missing refreshed credential just means the client re-logs in.
	resp := &response_models.VerifyPaymentResponse{
		Payment: toAttemptResponse(attempt),
	}

	user, err := p.users.FindByID(ctx, attempt.UserID)
	if err != nil || user == nil {
		p.logger.Error("user lookup failed after successful payment",
			zap.String("user_id", attempt.UserID.String()), zap.Error(err))
		return resp, nil
	}

	// Replacement credential so the client observes is_boarding=true.
	token, err := utils.CreateToken(user.ID, user.Role, true)
	if err != nil {
		p.logger.Error("credential refresh failed after successful payment",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		resp.Token = token
	}

	// Best-effort confirmation; the payment has already committed.
	go p.notifyPaymentSuccess(user, attempt)

	return resp, nil
}

func (p *paymentService) MarkFailed(ctx context.Context, userID uuid.UUID, req request_models.PaymentFailureRequest) (*response_models.PaymentAttemptResponse, error) {
	attempt, err := p.payments.FindByGatewayOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if attempt == nil {
		return nil, utils.ErrPaymentNotFound
	}
	if attempt.Status != db_models.PaymentStatusPending {
		resp := toAttemptResponse(attempt)
		return &resp, utils.ErrAlreadyProcessed
	}

	attempt.Status = db_models.PaymentStatusFailed
	attempt.ErrorReason = req.ErrorReason
	attempt.ErrorCode = req.ErrorCode
	if err := p.payments.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("mark failed: %w", err)
	}

	// Failed attempts must not leave orphaned pending siblings either.
	if _, err := p.payments.DeleteOtherPending(ctx, attempt.UserID, attempt.ID); err != nil {
		p.logger.Error("stale pending cleanup failed",
			zap.String("order_id", attempt.GatewayOrderID), zap.Error(err))
	}

	// No user mutation on failure; boarding is set only by the success path.
	resp := toAttemptResponse(attempt)
	return &resp, nil
}

func (p *paymentService) SetStatus(ctx context.Context, req request_models.SetPaymentStatusRequest) (*response_models.PaymentAttemptResponse, error) {
	attempt, err := p.payments.FindByGatewayOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if attempt == nil {
		return nil, utils.ErrPaymentNotFound
	}

	status := db_models.PaymentStatus(req.Status)
	attempt.Status = status
	if err := p.payments.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	p.policy.RecordEvent(policy.Event{
		Kind:   "admin_status_override",
		Key:    attempt.UserID.String(),
		Detail: attempt.GatewayOrderID + " -> " + string(status),
	})

	switch status {
	case db_models.PaymentStatusSuccess:
		if _, err := p.payments.DeleteOtherPending(ctx, attempt.UserID, attempt.ID); err != nil {
			p.logger.Error("stale pending cleanup failed",
				zap.String("order_id", attempt.GatewayOrderID), zap.Error(err))
		}
		if err := p.users.MarkBoarded(ctx, attempt.UserID); err != nil {
			p.logger.Error("boarding flag update failed",
				zap.String("user_id", attempt.UserID.String()), zap.Error(err))
		}
		if user, err := p.users.FindByID(ctx, attempt.UserID); err == nil && user != nil {
			go p.notifyPaymentSuccess(user, attempt)
		}
	case db_models.PaymentStatusFailed:
		if _, err := p.payments.DeleteOtherPending(ctx, attempt.UserID, attempt.ID); err != nil {
			p.logger.Error("stale pending cleanup failed",
				zap.String("order_id", attempt.GatewayOrderID), zap.Error(err))
		}
	}

	resp := toAttemptResponse(attempt)
	return &resp, nil
}

func (p *paymentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.PaymentAttemptResponse, error) {
	attempts, err := p.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toAttemptResponses(attempts), nil
}

func (p *paymentService) ListByStatus(ctx context.Context, status string) ([]response_models.PaymentAttemptResponse, error) {
	attempts, err := p.payments.ListByStatus(ctx, db_models.PaymentStatus(status))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toAttemptResponses(attempts), nil
}

func (p *paymentService) notifyPaymentSuccess(user *db_models.User, attempt *db_models.PaymentAttempt) {
	err := p.mailer.SendPaymentConfirmation(user.Email, user.Name, PaymentReceipt{
		Amount:      attempt.Amount,
		Currency:    attempt.Currency,
		PaymentID:   attempt.GatewayPaymentID,
		OrderID:     attempt.GatewayOrderID,
		IsEarlyBird: attempt.IsEarlyBird,
		PaidAt:      time.Unix(attempt.UpdatedAt, 0),
	})
	if err != nil {
		// Swallowed on purpose: notification failure never unwinds a payment.
		p.logger.Warn("payment confirmation mail failed",
			zap.String("email", user.Email), zap.Error(err))
	}
}

func toAttemptResponse(a *db_models.PaymentAttempt) response_models.PaymentAttemptResponse {
	return response_models.PaymentAttemptResponse{
		ID:               a.ID.String(),
		GatewayOrderID:   a.GatewayOrderID,
		Status:           string(a.Status),
		Amount:           a.Amount,
		Currency:         a.Currency,
		IsEarlyBird:      a.IsEarlyBird,
		GatewayPaymentID: a.GatewayPaymentID,
		ErrorReason:      a.ErrorReason,
		ErrorCode:        a.ErrorCode,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toAttemptResponses(attempts []db_models.PaymentAttempt) []response_models.PaymentAttemptResponse {
	out := make([]response_models.PaymentAttemptResponse, 0, len(attempts))
	for i := range attempts {
		out = append(out, toAttemptResponse(&attempts[i]))
	}
	return out
}
