package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"xinli/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if v, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && v > 0 {
		port = v
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port, // 587 for STARTTLS; 465 with UseSSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "心理测试平台",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "心理测试平台",
	}

	return services.NewSMTPMailService(cfg)
}
