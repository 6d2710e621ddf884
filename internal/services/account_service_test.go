package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/pkg/memcache"
	"hackfest/pkg/utils"
)

func newTestAccountService(users *MockUserRepository, mailer *MockMailService, tokens memcache.VerifyTokenStore) AccountServiceInterface {
	return NewAccountService(users, mailer, tokens, zap.NewNop())
}

func verifiedUser(email, password string) *db_models.User {
	hash, _ := utils.HashPassword(password)
	user := &db_models.User{
		Name:          "Asha",
		Email:         email,
		PasswordHash:  hash,
		Role:          "user",
		EmailVerified: true,
	}
	user.ID = uuid.New()
	return user
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Unverified Account And Stores Token", func(t *testing.T) {
		users := new(MockUserRepository)
		mailer := new(MockMailService)
		tokens := memcache.NewVerifyTokens()
		svc := newTestAccountService(users, mailer, tokens)

		users.On("FindByEmail", ctx, "new@example.com").Return(nil, nil).Once()
		users.On("Insert", ctx, mock.MatchedBy(func(u *db_models.User) bool {
			return u.Email == "new@example.com" && u.Role == "user" &&
				!u.EmailVerified && u.PasswordHash != "secret-pass-1"
		})).Return(nil).Once()
		mailer.On("SendVerificationEmail", "new@example.com", "Asha", mock.AnythingOfType("string")).
			Return(nil).Maybe()

		err := svc.Register(ctx, request_models.SignUpRequest{
			DisplayName: "Asha", Email: "new@example.com", Password: "secret-pass-1",
		})

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("Duplicate Email Is Rejected", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

		users.On("FindByEmail", ctx, "taken@example.com").
			Return(verifiedUser("taken@example.com", "pw"), nil).Once()

		err := svc.Register(ctx, request_models.SignUpRequest{
			DisplayName: "Asha", Email: "taken@example.com", Password: "secret-pass-1",
		})

		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Consumes Token Once", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := memcache.NewVerifyTokens()
		svc := newTestAccountService(users, new(MockMailService), tokens)

		tokens.Set("tok-1", "asha@example.com", time.Hour)
		users.On("SetEmailVerified", ctx, "asha@example.com").Return(nil).Once()

		assert.NoError(t, svc.VerifyEmail(ctx, "tok-1"))

		// Replay with the same token fails.
		assert.ErrorIs(t, svc.VerifyEmail(ctx, "tok-1"), utils.ErrInvalidVerifyToken)
		users.AssertNumberOfCalls(t, "SetEmailVerified", 1)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		tokens := memcache.NewVerifyTokens()
		svc := newTestAccountService(new(MockUserRepository), new(MockMailService), tokens)

		tokens.Set("tok-old", "asha@example.com", -time.Minute)

		assert.ErrorIs(t, svc.VerifyEmail(ctx, "tok-old"), utils.ErrInvalidVerifyToken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues Token For Verified Account", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

		user := verifiedUser("asha@example.com", "secret-pass-1")
		users.On("FindByEmail", ctx, "asha@example.com").Return(user, nil).Once()

		resp, err := svc.Login(ctx, request_models.LoginRequest{
			Email: "asha@example.com", Password: "secret-pass-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.False(t, resp.IsBoarding)

		claims, err := utils.ValidateToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

		users.On("FindByEmail", ctx, "asha@example.com").
			Return(verifiedUser("asha@example.com", "secret-pass-1"), nil).Once()

		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email: "asha@example.com", Password: "nope",
		})

		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("Unverified Email Is Blocked", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

		user := verifiedUser("asha@example.com", "secret-pass-1")
		user.EmailVerified = false
		users.On("FindByEmail", ctx, "asha@example.com").Return(user, nil).Once()

		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email: "asha@example.com", Password: "secret-pass-1",
		})

		assert.ErrorIs(t, err, utils.ErrEmailNotVerified)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

		users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email: "ghost@example.com", Password: "whatever1",
		})

		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestSaveOnboarding(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

	user := verifiedUser("asha@example.com", "pw")
	users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	users.On("Update", ctx, mock.MatchedBy(func(u *db_models.User) bool {
		return u.Profession == "student" && u.Phone == "9999999999" &&
			u.Institution == "IIT" && u.ThemeCode == "fintech"
	})).Return(nil).Once()

	err := svc.SaveOnboarding(ctx, user.ID, request_models.OnboardingRequest{
		Profession: "student", Phone: "9999999999", Institution: "IIT", ThemeCode: "fintech",
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	svc := newTestAccountService(users, new(MockMailService), memcache.NewVerifyTokens())

	user := verifiedUser("asha@example.com", "pw")
	teamID := uuid.New()
	user.TeamID = &teamID
	user.IsBoarding = true
	users.On("FindByID", ctx, user.ID).Return(user, nil).Once()

	resp, err := svc.GetProfile(ctx, user.ID)

	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.ID)
	assert.True(t, resp.IsBoarding)
	assert.Equal(t, teamID.String(), resp.TeamID)
}
