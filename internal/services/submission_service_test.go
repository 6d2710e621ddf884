package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/pkg/utils"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()

	userInTeam := func() *db_models.User {
		u := &db_models.User{Name: "Ravi", Email: "ravi@example.com", Role: "user", TeamID: &teamID}
		u.ID = uuid.New()
		return u
	}

	t.Run("Valid Public Repo Is Upserted", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		validator := new(MockRepoValidator)
		svc := NewSubmissionService(submissions, users, validator)

		user := userInTeam()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		validator.On("IsPublic", ctx, "acme", "hackproject").Return(true, nil).Once()
		validator.On("HasFile", ctx, "acme", "hackproject", "README.md").Return(true, nil).Once()
		submissions.On("Upsert", ctx, mock.MatchedBy(func(s *db_models.Submission) bool {
			return s.TeamID == teamID && s.RepoURL == "https://github.com/acme/hackproject"
		})).Return(nil).Once()

		resp, err := svc.Submit(ctx, user.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://github.com/acme/hackproject", Description: "payments demo",
		})

		assert.NoError(t, err)
		assert.Equal(t, teamID.String(), resp.TeamID)
		submissions.AssertExpectations(t)
	})

	t.Run("Trailing Git Suffix Is Stripped", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		validator := new(MockRepoValidator)
		svc := NewSubmissionService(submissions, users, validator)

		user := userInTeam()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		validator.On("IsPublic", ctx, "acme", "hackproject").Return(true, nil).Once()
		validator.On("HasFile", ctx, "acme", "hackproject", "README.md").Return(true, nil).Once()
		submissions.On("Upsert", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.Submit(ctx, user.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://github.com/acme/hackproject.git",
		})

		assert.NoError(t, err)
		validator.AssertExpectations(t)
	})

	t.Run("Private Repo Is Rejected", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		validator := new(MockRepoValidator)
		svc := NewSubmissionService(submissions, users, validator)

		user := userInTeam()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		validator.On("IsPublic", ctx, "acme", "secret").Return(false, nil).Once()

		_, err := svc.Submit(ctx, user.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://github.com/acme/secret",
		})

		assert.ErrorIs(t, err, utils.ErrRepoNotPublic)
		submissions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Missing Readme Is Rejected", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		validator := new(MockRepoValidator)
		svc := NewSubmissionService(submissions, users, validator)

		user := userInTeam()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		validator.On("IsPublic", ctx, "acme", "bare").Return(true, nil).Once()
		validator.On("HasFile", ctx, "acme", "bare", "README.md").Return(false, nil).Once()

		_, err := svc.Submit(ctx, user.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://github.com/acme/bare",
		})

		assert.ErrorIs(t, err, utils.ErrRepoMissingReadme)
	})

	t.Run("Non GitHub URL Is Rejected", func(t *testing.T) {
		users := new(MockUserRepository)
		validator := new(MockRepoValidator)
		svc := NewSubmissionService(new(MockSubmissionRepository), users, validator)

		user := userInTeam()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()

		_, err := svc.Submit(ctx, user.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://gitlab.com/acme/hackproject",
		})

		assert.ErrorIs(t, err, utils.ErrInvalidRepoURL)
		validator.AssertNotCalled(t, "IsPublic", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Requires Team Membership", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewSubmissionService(new(MockSubmissionRepository), users, new(MockRepoValidator))

		loner := &db_models.User{Name: "Solo", Role: "user"}
		loner.ID = uuid.New()
		users.On("FindByID", ctx, loner.ID).Return(loner, nil).Once()

		_, err := svc.Submit(ctx, loner.ID, request_models.SubmitProjectRequest{
			RepoURL: "https://github.com/acme/hackproject",
		})

		assert.ErrorIs(t, err, utils.ErrNotInTeam)
	})
}

func TestGetSubmission(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()

	user := &db_models.User{Name: "Ravi", Role: "user", TeamID: &teamID}
	user.ID = uuid.New()

	t.Run("Returns Team Submission", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		svc := NewSubmissionService(submissions, users, new(MockRepoValidator))

		sub := &db_models.Submission{TeamID: teamID, RepoURL: "https://github.com/acme/hackproject"}
		sub.ID = uuid.New()
		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		submissions.On("FindByTeam", ctx, teamID).Return(sub, nil).Once()

		resp, err := svc.GetSubmission(ctx, user.ID)

		assert.NoError(t, err)
		assert.Equal(t, sub.RepoURL, resp.RepoURL)
	})

	t.Run("Nothing Submitted Yet", func(t *testing.T) {
		submissions := new(MockSubmissionRepository)
		users := new(MockUserRepository)
		svc := NewSubmissionService(submissions, users, new(MockRepoValidator))

		users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
		submissions.On("FindByTeam", ctx, teamID).Return(nil, nil).Once()

		_, err := svc.GetSubmission(ctx, user.ID)

		assert.ErrorIs(t, err, utils.ErrSubmissionNotFound)
	})
}
