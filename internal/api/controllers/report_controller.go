package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"xinli/internal/models/request_models"
	"xinli/internal/models/response_models"
	"xinli/internal/scoring"
	"xinli/internal/services"
	"xinli/pkg/utils"
)

type ReportController struct {
	reportService   services.ReportServiceInterface
	deliveryService services.DeliveryServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface, deliveryService services.DeliveryServiceInterface) *ReportController {
	return &ReportController{
		reportService:   reportService,
		deliveryService: deliveryService,
	}
}

// GeneratePDF renders a result record into a downloadable report.
func (r *ReportController) GeneratePDF(c *gin.Context) {
	var req request_models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := scoring.ParseAndEnrich(req.TestType, req.ResultData)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := r.reportService.RenderReport(req.TestType, record)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("xinli-report-%s.pdf", req.TestType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (r *ReportController) SendReportEmail(c *gin.Context) {
	var req request_models.SendReportEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := r.deliveryService.SendReport(c.Request.Context(), req.To, req.TestType, req.ResultData, req.OrderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SendReportEmailResponse{
		OrderID: req.OrderID,
		Sent:    true,
	}, "Report email sent")
}
