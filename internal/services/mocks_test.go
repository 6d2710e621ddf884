package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/gateway"
	"hackfest/internal/models/db_models"
	"hackfest/pkg/policy"
)

// --- Mocks for Dependencies ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkBoarded(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetEmailVerified(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) SetTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error {
	args := m.Called(ctx, id, teamID)
	return args.Error(0)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Create(ctx context.Context, attempt *db_models.PaymentAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByGatewayOrderID(ctx context.Context, orderID string) (*db_models.PaymentAttempt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.PaymentAttempt), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, attempt *db_models.PaymentAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeleteOtherPending(ctx context.Context, userID uuid.UUID, keepID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, keepID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentAttempt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PaymentAttempt), args.Error(1)
}

func (m *MockPaymentRepository) ListByStatus(ctx context.Context, status db_models.PaymentStatus) ([]db_models.PaymentAttempt, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PaymentAttempt), args.Error(1)
}

func (m *MockPaymentRepository) ListSuccessWithUnboardedOwner(ctx context.Context) ([]db_models.PaymentAttempt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PaymentAttempt), args.Error(1)
}

type MockTeamRepository struct{ mock.Mock }

func (m *MockTeamRepository) Insert(ctx context.Context, team *db_models.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByName(ctx context.Context, name string) (*db_models.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByJoinCode(ctx context.Context, code string) (*db_models.Team, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Team), args.Error(1)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubmissionRepository struct{ mock.Mock }

func (m *MockSubmissionRepository) Upsert(ctx context.Context, submission *db_models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) (*db_models.Submission, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListAll(ctx context.Context) ([]db_models.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Submission), args.Error(1)
}

type MockGatewayClient struct{ mock.Mock }

func (m *MockGatewayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*gateway.Order, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}

type MockMailService struct{ mock.Mock }

func (m *MockMailService) SendVerificationEmail(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *MockMailService) SendPaymentConfirmation(to, name string, receipt PaymentReceipt) error {
	args := m.Called(to, name, receipt)
	return args.Error(0)
}

type MockPolicy struct{ mock.Mock }

func (m *MockPolicy) IsAllowed(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *MockPolicy) RecordEvent(e policy.Event) {
	m.Called(e)
}

type MockRepoValidator struct{ mock.Mock }

func (m *MockRepoValidator) IsPublic(ctx context.Context, owner, repo string) (bool, error) {
	args := m.Called(ctx, owner, repo)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepoValidator) HasFile(ctx context.Context, owner, repo, path string) (bool, error) {
	args := m.Called(ctx, owner, repo, path)
	return args.Bool(0), args.Error(1)
}
