package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"hackfest/internal/services"
	"hackfest/pkg/logger"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587 // STARTTLS default
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "HackFest",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName:    "HackFest",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		logger.Log.Sugar().Errorf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
