package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"xinli/internal/models/request_models"
	"xinli/internal/services"
	"xinli/pkg/utils"
)

type PaymentController struct {
	orderService services.OrderServiceInterface
}

func NewPaymentController(orderService services.OrderServiceInterface) *PaymentController {
	return &PaymentController{orderService: orderService}
}

func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		// Production mode still returns the created order alongside
		// the 501 so the client can retry once the gateway exists.
		if errors.Is(err, utils.ErrNotImplemented) && resp != nil {
			c.JSON(http.StatusNotImplemented, utils.APIResponse{
				Status:  "error",
				Code:    http.StatusNotImplemented,
				Message: "Production payment provider not yet integrated",
				Data:    resp,
			})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order created")
}

func (p *PaymentController) ConfirmSandboxPayment(c *gin.Context) {
	var req request_models.SandboxConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.orderService.ConfirmSandboxPayment(c.Request.Context(), req.OrderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment confirmed")
}

func (p *PaymentController) VerifyOrder(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		utils.RespondError(c, http.StatusBadRequest, "orderId is required")
		return
	}

	resp, err := p.orderService.VerifyOrder(c.Request.Context(), orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order verified")
}

// ProviderCallback backs the wechat/alipay notify routes. Providers
// are not integrated yet, so this always answers 501.
func (p *PaymentController) ProviderCallback(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.orderService.HandleProviderCallback(c.Request.Context(), provider); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, nil, "Callback processed")
	}
}
