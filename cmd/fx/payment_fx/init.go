package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/api/controllers"
	"hackfest/internal/gateway"
	"hackfest/internal/repositories"
	"hackfest/internal/services"
	"hackfest/pkg/logger"
	"hackfest/pkg/policy"
)

var Module = fx.Provide(
	providePaymentRepo, provideGatewayClient, providePaymentService, providePaymentController,
)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideGatewayClient() gateway.Client {
	return gateway.NewRazorpayClient(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
}

func providePaymentService(
	payments repositories.PaymentRepository,
	users repositories.UserRepository,
	gw gateway.Client,
	mailService services.IMailService,
	pol policy.Policy,
) services.PaymentService {
	cfg := services.PaymentConfig{
		ChecksumSecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}

	instance, err := services.NewPaymentService(payments, users, gw, mailService, pol, cfg, logger.Log)
	if err != nil {
		logger.Log.Sugar().Errorf("Error initializing PaymentService: %v", err)
	}

	return instance
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
