package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/internal/models/response_models"
	"hackfest/internal/repositories"
	"hackfest/pkg/utils"
)

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, request request_models.SubmitProjectRequest) (*response_models.SubmissionResponse, error)
	GetSubmission(ctx context.Context, userID uuid.UUID) (*response_models.SubmissionResponse, error)
}

type SubmissionService struct {
	submissions repositories.SubmissionRepository
	users       repositories.UserRepository
	validator   RepoValidator
}

func NewSubmissionService(
	submissions repositories.SubmissionRepository,
	users repositories.UserRepository,
	validator RepoValidator,
) SubmissionServiceInterface {
	return &SubmissionService{
		submissions: submissions,
		users:       users,
		validator:   validator,
	}
}

func (s *SubmissionService) Submit(ctx context.Context, userID uuid.UUID, request request_models.SubmitProjectRequest) (*response_models.SubmissionResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.TeamID == nil {
		return nil, utils.ErrNotInTeam
	}

	owner, repo, err := parseGitHubURL(request.RepoURL)
	if err != nil {
		return nil, err
	}

	public, err := s.validator.IsPublic(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	if !public {
		return nil, utils.ErrRepoNotPublic
	}

	hasReadme, err := s.validator.HasFile(ctx, owner, repo, "README.md")
	if err != nil {
		return nil, err
	}
	if !hasReadme {
		return nil, utils.ErrRepoMissingReadme
	}

	submission := &db_models.Submission{
		TeamID:      *user.TeamID,
		RepoURL:     request.RepoURL,
		Description: request.Description,
	}
	if err := s.submissions.Upsert(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SubmissionResponse{
		ID:          submission.ID.String(),
		TeamID:      submission.TeamID.String(),
		RepoURL:     submission.RepoURL,
		Description: submission.Description,
		UpdatedAt:   submission.UpdatedAt,
	}, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, userID uuid.UUID) (*response_models.SubmissionResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.TeamID == nil {
		return nil, utils.ErrNotInTeam
	}

	submission, err := s.submissions.FindByTeam(ctx, *user.TeamID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if submission == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	return &response_models.SubmissionResponse{
		ID:          submission.ID.String(),
		TeamID:      submission.TeamID.String(),
		RepoURL:     submission.RepoURL,
		Description: submission.Description,
		UpdatedAt:   submission.UpdatedAt,
	}, nil
}

func parseGitHubURL(raw string) (owner, repo string, err error) {
	u, err := url.Parse(raw)
	if err != nil || !strings.HasSuffix(u.Host, "github.com") {
		return "", "", utils.ErrInvalidRepoURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", utils.ErrInvalidRepoURL
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
