package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"templify/internal/repositories"
	"templify/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminRepo)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(adminRepo repositories.AdminRepository, orderRepo repositories.OrderRepository) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, orderRepo)
}
