package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"templify/internal/repositories"
	"templify/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	orderRepo repositories.OrderRepository,
	templateRepo repositories.TemplateRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, orderRepo, templateRepo)
}
