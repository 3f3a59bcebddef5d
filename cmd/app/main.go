package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"templify/cmd/fx/account_fx"
	"templify/cmd/fx/admin_fx"
	"templify/cmd/fx/catalog_fx"
	"templify/cmd/fx/controllers_fx"
	"templify/cmd/fx/db_fx"
	"templify/cmd/fx/mail_fx"
	"templify/cmd/fx/order_fx"
	"templify/cmd/fx/review_fx"
	"templify/cmd/fx/upload_fx"
	"templify/internal/api/controllers"
	"templify/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		order_fx.Module,
		review_fx.Module,
		admin_fx.Module,
		upload_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	categoryController *controllers.CategoryController,
	templateController *controllers.TemplateController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, categoryController, templateController, orderController, reviewController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	categoryController *controllers.CategoryController,
	templateController *controllers.TemplateController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	adminController *controllers.AdminController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/user", middleware.JWTAuthMiddleware(), accountController.GetCurrentUser)

	api.GET("/categories", categoryController.ListCategories)

	templatesGroup := api.Group("/templates")
	templatesGroup.GET("", templateController.ListTemplates)
	templatesGroup.GET("/featured", templateController.FeaturedTemplates)
	templatesGroup.GET("/best-selling", templateController.BestSellingTemplates)
	templatesGroup.GET("/latest", templateController.LatestTemplates)
	templatesGroup.GET("/trending", templateController.TrendingTemplates)
	templatesGroup.GET("/discount", templateController.DiscountTemplates)
	templatesGroup.GET("/favorites", templateController.FavoriteTemplates)
	templatesGroup.GET("/category/:categoryId", templateController.TemplatesByCategory)
	templatesGroup.GET("/slug/:slug", templateController.GetTemplateBySlug)
	templatesGroup.GET("/:id", templateController.GetTemplateByID)
	templatesGroup.GET("/:id/reviews", reviewController.ListTemplateReviews)
	templatesGroup.POST("/:id/reviews", middleware.JWTAuthMiddleware(), reviewController.AddReview)

	adminOnly := []gin.HandlerFunc{middleware.JWTAuthMiddleware(), middleware.AdminMiddleware()}
	templatesGroup.POST("", append(adminOnly, templateController.CreateTemplate)...)
	templatesGroup.PUT("/:id", append(adminOnly, templateController.UpdateTemplate)...)
	templatesGroup.DELETE("/:id", append(adminOnly, templateController.DeleteTemplate)...)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("/create-payment-intent", orderController.CreatePaymentIntent)
	authed.POST("/confirm-payment", orderController.ConfirmPayment)
	authed.GET("/my-purchases", orderController.MyPurchases)
	authed.GET("/my-orders", orderController.MyOrders)
	authed.GET("/my-templates", templateController.MyTemplates)

	api.POST("/categories", append(adminOnly, categoryController.CreateCategory)...)
	api.PUT("/categories/:id", append(adminOnly, categoryController.UpdateCategory)...)
	api.DELETE("/categories/:id", append(adminOnly, categoryController.DeleteCategory)...)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.GET("/stats", adminController.GetStats)
	adminGroup.GET("/recent-orders", adminController.RecentOrders)
}
