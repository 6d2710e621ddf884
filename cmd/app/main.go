package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"hackfest/cmd/fx/account_fx"
	"hackfest/cmd/fx/admin_fx"
	"hackfest/cmd/fx/db_fx"
	"hackfest/cmd/fx/mail_fx"
	"hackfest/cmd/fx/payment_fx"
	"hackfest/cmd/fx/policy_fx"
	"hackfest/cmd/fx/reconcile_fx"
	"hackfest/cmd/fx/submission_fx"
	"hackfest/cmd/fx/team_fx"
	"hackfest/internal/api/controllers"
	"hackfest/pkg/logger"
	"hackfest/pkg/middleware"
	"hackfest/pkg/policy"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize(os.Getenv("APP_ENV"))

	app := fx.New(
		db_fx.Module,
		policy_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		payment_fx.Module,
		team_fx.Module,
		submission_fx.Module,
		admin_fx.Module,
		reconcile_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Log.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	pol policy.Policy,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	teamController *controllers.TeamController,
	submissionController *controllers.SubmissionController,
	adminController *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())

	RegisterRoutes(r, pol, accountController, paymentController, teamController, submissionController, adminController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	pol policy.Policy,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	teamController *controllers.TeamController,
	submissionController *controllers.SubmissionController,
	adminController *controllers.AdminController,
) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(pol))
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/verify-email", accountController.VerifyEmail)
	authGroup.POST("/login", accountController.Login)

	userGroup := r.Group("/users")
	userGroup.Use(middleware.JWTAuthMiddleware())
	userGroup.GET("/me", accountController.GetProfile)
	userGroup.PUT("/me/onboarding", accountController.SaveOnboarding)

	paymentGroup := r.Group("/payments")
	paymentGroup.Use(middleware.JWTAuthMiddleware(), middleware.RateLimitMiddleware(pol))
	paymentGroup.POST("/orders", paymentController.CreateOrder)
	paymentGroup.POST("/verify", paymentController.VerifyPayment)
	paymentGroup.POST("/failure", paymentController.MarkFailed)
	paymentGroup.GET("", paymentController.ListMyPayments)

	teamGroup := r.Group("/teams")
	teamGroup.Use(middleware.JWTAuthMiddleware())
	teamGroup.POST("", teamController.CreateTeam)
	teamGroup.POST("/join", teamController.JoinTeam)
	teamGroup.POST("/leave", teamController.LeaveTeam)
	teamGroup.GET("/mine", teamController.GetTeam)

	submissionGroup := r.Group("/submissions")
	submissionGroup.Use(middleware.JWTAuthMiddleware())
	submissionGroup.POST("", submissionController.Submit)
	submissionGroup.GET("/mine", submissionController.GetSubmission)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.GET("/payments", adminController.ListPayments)
	adminGroup.PUT("/payments/status", adminController.SetPaymentStatus)
	adminGroup.GET("/settings/pricing", adminController.GetPricing)
	adminGroup.PUT("/settings/pricing", adminController.UpdatePricing)
}
