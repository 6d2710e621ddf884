package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hackfest/internal/models/db_models"
)

type TeamRepository interface {
	Insert(ctx context.Context, team *db_models.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Team, error)
	FindByName(ctx context.Context, name string) (*db_models.Team, error)
	FindByJoinCode(ctx context.Context, code string) (*db_models.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Insert(ctx context.Context, team *db_models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Team, error) {
	var team db_models.Team
	err := r.db.WithContext(ctx).Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindByName(ctx context.Context, name string) (*db_models.Team, error) {
	var team db_models.Team
	err := r.db.WithContext(ctx).First(&team, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindByJoinCode(ctx context.Context, code string) (*db_models.Team, error) {
	var team db_models.Team
	err := r.db.WithContext(ctx).Preload("Members").First(&team, "join_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Team{}, "id = ?", id).Error
}
