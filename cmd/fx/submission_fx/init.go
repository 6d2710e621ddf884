package submission_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/api/controllers"
	"hackfest/internal/repositories"
	"hackfest/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideRepoValidator, provideSubmissionService, provideSubmissionController,
)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideRepoValidator() services.RepoValidator {
	return services.NewGitHubValidator(os.Getenv("GITHUB_TOKEN"))
}

func provideSubmissionService(
	submissions repositories.SubmissionRepository,
	users repositories.UserRepository,
	validator services.RepoValidator,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(submissions, users, validator)
}

func provideSubmissionController(submissionService services.SubmissionServiceInterface) *controllers.SubmissionController {
	return controllers.NewSubmissionController(submissionService)
}
