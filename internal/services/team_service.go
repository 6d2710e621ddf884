package services

import (
	"context"

	"github.com/google/uuid"

	"hackfest/internal/models/db_models"
	"hackfest/internal/models/request_models"
	"hackfest/internal/models/response_models"
	"hackfest/internal/repositories"
	"hackfest/pkg/utils"
)

type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, leaderID uuid.UUID, request request_models.CreateTeamRequest) (*response_models.TeamResponse, error)
	JoinTeam(ctx context.Context, userID uuid.UUID, request request_models.JoinTeamRequest) (*response_models.TeamResponse, error)
	LeaveTeam(ctx context.Context, userID uuid.UUID) error
	GetTeam(ctx context.Context, userID uuid.UUID) (*response_models.TeamResponse, error)
}

type TeamService struct {
	teams repositories.TeamRepository
	users repositories.UserRepository
}

func NewTeamService(teams repositories.TeamRepository, users repositories.UserRepository) TeamServiceInterface {
	return &TeamService{teams: teams, users: users}
}

func (t *TeamService) CreateTeam(ctx context.Context, leaderID uuid.UUID, request request_models.CreateTeamRequest) (*response_models.TeamResponse, error) {
	leader, err := t.users.FindByID(ctx, leaderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if leader == nil {
		return nil, utils.ErrAccountNotFound
	}
	if leader.TeamID != nil {
		return nil, utils.ErrAlreadyInTeam
	}

	existing, err := t.teams.FindByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrTeamNameTaken
	}

	code, err := utils.GenerateJoinCode(8)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	team := &db_models.Team{
		Name:     request.Name,
		LeaderID: leaderID,
		JoinCode: code,
	}
	if err := t.teams.Insert(ctx, team); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := t.users.SetTeam(ctx, leaderID, &team.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TeamResponse{
		ID:       team.ID.String(),
		Name:     team.Name,
		JoinCode: team.JoinCode,
		Members: []response_models.TeamMemberResponse{{
			ID:         leader.ID.String(),
			Name:       leader.Name,
			Email:      leader.Email,
			Profession: leader.Profession,
			IsLeader:   true,
		}},
	}, nil
}

func (t *TeamService) JoinTeam(ctx context.Context, userID uuid.UUID, request request_models.JoinTeamRequest) (*response_models.TeamResponse, error) {
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.TeamID != nil {
		return nil, utils.ErrAlreadyInTeam
	}

	team, err := t.teams.FindByJoinCode(ctx, request.JoinCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if team == nil {
		return nil, utils.ErrInvalidJoinCode
	}
	if len(team.Members) >= db_models.MaxTeamSize {
		return nil, utils.ErrTeamFull
	}

	if err := t.users.SetTeam(ctx, userID, &team.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Re-read for a membership list that includes the joiner.
	fresh, err := t.teams.FindByID(ctx, team.ID)
	if err != nil || fresh == nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toTeamResponse(fresh, false)
	return &resp, nil
}

func (t *TeamService) LeaveTeam(ctx context.Context, userID uuid.UUID) error {
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if user.TeamID == nil {
		return utils.ErrNotInTeam
	}

	team, err := t.teams.FindByID(ctx, *user.TeamID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if team == nil {
		return utils.ErrTeamNotFound
	}

	// The leader leaving disbands the whole team.
	if team.LeaderID == userID {
		for _, member := range team.Members {
			if err := t.users.SetTeam(ctx, member.ID, nil); err != nil {
				return utils.ErrDatabaseError
			}
		}
		if err := t.teams.Delete(ctx, team.ID); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	if err := t.users.SetTeam(ctx, userID, nil); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TeamService) GetTeam(ctx context.Context, userID uuid.UUID) (*response_models.TeamResponse, error) {
	user, err := t.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.TeamID == nil {
		return nil, utils.ErrNotInTeam
	}

	team, err := t.teams.FindByID(ctx, *user.TeamID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if team == nil {
		return nil, utils.ErrTeamNotFound
	}

	// Join code is only shown to the leader.
	resp := toTeamResponse(team, team.LeaderID != userID)
	return &resp, nil
}

func toTeamResponse(team *db_models.Team, hideJoinCode bool) response_models.TeamResponse {
	resp := response_models.TeamResponse{
		ID:   team.ID.String(),
		Name: team.Name,
	}
	if !hideJoinCode {
		resp.JoinCode = team.JoinCode
	}
	for _, m := range team.Members {
		resp.Members = append(resp.Members, response_models.TeamMemberResponse{
			ID:         m.ID.String(),
			Name:       m.Name,
			Email:      m.Email,
			Profession: m.Profession,
			IsLeader:   m.ID == team.LeaderID,
		})
	}
	return resp
}
