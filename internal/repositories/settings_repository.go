package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hackfest/internal/models/db_models"
)

type SettingsRepository interface {
	// Get returns the pricing row, creating the default one if absent.
	Get(ctx context.Context) (*db_models.PricingSettings, error)
	Update(ctx context.Context, settings *db_models.PricingSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*db_models.PricingSettings, error) {
	var settings db_models.PricingSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = db_models.PricingSettings{
				RegularAmount:   500,
				EarlyBirdAmount: 350,
				EarlyBirdActive: true,
				Currency:        "INR",
			}
			if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *db_models.PricingSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
