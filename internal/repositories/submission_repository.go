package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hackfest/internal/models/db_models"
)

type SubmissionRepository interface {
	// Upsert keeps one submission per team; re-submission overwrites.
	Upsert(ctx context.Context, submission *db_models.Submission) error
	FindByTeam(ctx context.Context, teamID uuid.UUID) (*db_models.Submission, error)
	ListAll(ctx context.Context) ([]db_models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Upsert(ctx context.Context, submission *db_models.Submission) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"repo_url", "description", "updated_at"}),
		}).
		Create(submission).Error
}

func (r *submissionRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) (*db_models.Submission, error) {
	var submission db_models.Submission
	err := r.db.WithContext(ctx).First(&submission, "team_id = ?", teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]db_models.Submission, error) {
	var submissions []db_models.Submission
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&submissions).Error
	return submissions, err
}
