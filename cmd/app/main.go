package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"xinli/cmd/fx/db_fx"
	"xinli/cmd/fx/mail_fx"
	"xinli/cmd/fx/order_fx"
	"xinli/cmd/fx/report_fx"
	"xinli/cmd/fx/scoring_fx"
	"xinli/internal/api/controllers"
	"xinli/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		report_fx.Module,
		scoring_fx.Module,
		order_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	scoreController *controllers.ScoreController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, scoreController, paymentController, reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	scoreController *controllers.ScoreController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	scoreGroup := api.Group("/score")
	scoreGroup.POST("/mbti", scoreController.ScoreMBTI)
	scoreGroup.POST("/iq", scoreController.ScoreIQ)
	scoreGroup.POST("/career", scoreController.ScoreCareer)

	paymentGroup := api.Group("/payment")
	paymentGroup.POST("/create", paymentController.CreateOrder)
	paymentGroup.POST("/sandbox-confirm", paymentController.ConfirmSandboxPayment)
	paymentGroup.GET("/verify", paymentController.VerifyOrder)
	paymentGroup.POST("/callback/wechat", paymentController.ProviderCallback("wechat"))
	paymentGroup.POST("/callback/alipay", paymentController.ProviderCallback("alipay"))

	api.POST("/pdf/generate", reportController.GeneratePDF)
	api.POST("/email/send", reportController.SendReportEmail)
}
