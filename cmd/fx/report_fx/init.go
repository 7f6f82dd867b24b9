package report_fx

import (
	"os"

	"go.uber.org/fx"

	"xinli/internal/api/controllers"
	"xinli/internal/services"
)

var Module = fx.Provide(
	provideReportService, provideDeliveryService, provideReportController,
)

const appName = "心理测试平台"

func provideReportService() services.ReportServiceInterface {
	return services.NewReportService(services.ReportConfig{
		AppName:  appName,
		FontPath: os.Getenv("REPORT_FONT_PATH"),
	})
}

func provideDeliveryService(
	mail services.IMailService,
	reports services.ReportServiceInterface) services.DeliveryServiceInterface {
	return services.NewDeliveryService(mail, reports, appName)
}

func provideReportController(
	reports services.ReportServiceInterface,
	delivery services.DeliveryServiceInterface) *controllers.ReportController {
	return controllers.NewReportController(reports, delivery)
}
