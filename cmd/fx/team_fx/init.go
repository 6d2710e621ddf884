package team_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/api/controllers"
	"hackfest/internal/repositories"
	"hackfest/internal/services"
)

var Module = fx.Provide(
	provideTeamRepo, provideTeamService, provideTeamController,
)

func provideTeamRepo(db *gorm.DB) repositories.TeamRepository {
	return repositories.NewTeamRepository(db)
}

func provideTeamService(teams repositories.TeamRepository, users repositories.UserRepository) services.TeamServiceInterface {
	return services.NewTeamService(teams, users)
}

func provideTeamController(teamService services.TeamServiceInterface) *controllers.TeamController {
	return controllers.NewTeamController(teamService)
}
