package controllers_fx

import (
	"go.uber.org/fx"
	"templify/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewTemplateController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewAdminController))
