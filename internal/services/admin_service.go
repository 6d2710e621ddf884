package services

import (
	"context"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/internal/models/response_models"
	"hackfest/internal/repositories"
	"hackfest/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.ProfileResponse, error)
	GetPricing(ctx context.Context) (*db_models.PricingSettings, error)
	UpdatePricing(ctx context.Context, request request_models.UpdatePricingRequest) (*db_models.PricingSettings, error)
}

type AdminService struct {
	users    repositories.UserRepository
	settings repositories.SettingsRepository
}

func NewAdminService(users repositories.UserRepository, settings repositories.SettingsRepository) AdminServiceInterface {
	return &AdminService{users: users, settings: settings}
}

func (a *AdminService) ListUsers(ctx context.Context) ([]response_models.ProfileResponse, error) {
	users, err := a.users.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ProfileResponse, 0, len(users))
	for _, u := range users {
		resp := response_models.ProfileResponse{
			ID:            u.ID.String(),
			Name:          u.Name,
			Email:         u.Email,
			Role:          u.Role,
			IsBoarding:    u.IsBoarding,
			EmailVerified: u.EmailVerified,
			Profession:    u.Profession,
			Phone:         u.Phone,
			Institution:   u.Institution,
			ThemeCode:     u.ThemeCode,
		}
		if u.TeamID != nil {
			resp.TeamID = u.TeamID.String()
		}
		out = append(out, resp)
	}
	return out, nil
}

func (a *AdminService) GetPricing(ctx context.Context) (*db_models.PricingSettings, error) {
	settings, err := a.settings.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (a *AdminService) UpdatePricing(ctx context.Context, request request_models.UpdatePricingRequest) (*db_models.PricingSettings, error) {
	settings, err := a.settings.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	settings.RegularAmount = request.RegularAmount
	settings.EarlyBirdAmount = request.EarlyBirdAmount
	settings.EarlyBirdActive = request.EarlyBirdActive
	settings.Currency = request.Currency

	if err := a.settings.Update(ctx, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}
