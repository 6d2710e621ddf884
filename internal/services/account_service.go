package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/internal/models/response_models"
	"hackfest/internal/repositories"
	"hackfest/pkg/memcache"
	"hackfest/pkg/utils"
)

const verifyTokenTTL = 24 * time.Hour

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	SaveOnboarding(ctx context.Context, userID uuid.UUID, request request_models.OnboardingRequest) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	users       repositories.UserRepository
	mailService IMailService
	tokens      memcache.VerifyTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	users repositories.UserRepository,
	mailService IMailService,
	tokens memcache.VerifyTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		users:       users,
		mailService: mailService,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := a.users.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.tokens.Set(token, user.Email, verifyTokenTTL)

	// Best effort; the user can request a resend if this fails.
	go func() {
		if err := a.mailService.SendVerificationEmail(user.Email, user.Name, token); err != nil {
			a.logger.Warn("verification mail failed",
				zap.String("email", user.Email), zap.Error(err))
		}
	}()

	return nil
}

func (a *AccountService) VerifyEmail(ctx context.Context, token string) error {
	email := a.tokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidVerifyToken
	}

	if err := a.users.SetEmailVerified(ctx, email); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, utils.ErrEmailNotVerified
	}

	token, err := utils.CreateToken(user.ID, user.Role, user.IsBoarding)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:      token,
		IsBoarding: user.IsBoarding,
	}, nil
}

func (a *AccountService) SaveOnboarding(ctx context.Context, userID uuid.UUID, request request_models.OnboardingRequest) error {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	user.Profession = request.Profession
	user.Phone = request.Phone
	user.Institution = request.Institution
	user.ThemeCode = request.ThemeCode

	if err := a.users.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := &response_models.ProfileResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		IsBoarding:    user.IsBoarding,
		EmailVerified: user.EmailVerified,
		Profession:    user.Profession,
		Phone:         user.Phone,
		Institution:   user.Institution,
		ThemeCode:     user.ThemeCode,
	}
	if user.TeamID != nil {
		resp.TeamID = user.TeamID.String()
	}
	return resp, nil
}
