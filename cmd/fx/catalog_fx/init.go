package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"templify/internal/repositories"
	"templify/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideTemplateRepo, provideCategoryRepo)

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCatalogService(templateRepo repositories.TemplateRepository, categoryRepo repositories.CategoryRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(templateRepo, categoryRepo)
}
