package scoring_fx

import (
	"go.uber.org/fx"

	"xinli/internal/api/controllers"
	"xinli/internal/services"
)

var Module = fx.Provide(
	provideScoreService, provideScoreController,
)

func provideScoreService() services.ScoreServiceInterface {
	return services.NewScoreService()
}

func provideScoreController(scoreService services.ScoreServiceInterface) *controllers.ScoreController {
	return controllers.NewScoreController(scoreService)
}
