package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"xinli/internal/models/db_models"
	"xinli/internal/models/request_models"
	"xinli/internal/models/response_models"
	"xinli/internal/repositories"
	"xinli/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req request_models.CreatePaymentRequest) (*response_models.CreateOrderResponse, error)
	ConfirmSandboxPayment(ctx context.Context, orderID string) (*response_models.ConfirmOrderResponse, error)
	VerifyOrder(ctx context.Context, orderID string) (*response_models.VerifyOrderResponse, error)
	// HandleProviderCallback is the entry point wechat/alipay notify
	// URLs will hit once real provider integration lands.
	HandleProviderCallback(ctx context.Context, provider string) error
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	delivery  DeliveryServiceInterface
	cfg       PaymentConfig
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, delivery DeliveryServiceInterface, cfg PaymentConfig) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
		delivery:  delivery,
		cfg:       cfg,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req request_models.CreatePaymentRequest) (*response_models.CreateOrderResponse, error) {
	testType := db_models.TestType(req.TestType)
	if !testType.Valid() {
		return nil, fmt.Errorf("%w: unknown test type %q", utils.ErrInvalidInput, req.TestType)
	}
	if !db_models.PaymentMethod(req.PaymentMethod).Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", utils.ErrInvalidInput, req.PaymentMethod)
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address %q", utils.ErrInvalidInput, req.Email)
	}

	orderID := uuid.New().String()
	amount := s.cfg.TestPrice(req.TestType)

	order := db_models.Order{
		ID:       orderID,
		TestType: testType,
		Amount:   amount,
	}
	if req.Email != "" {
		email := req.Email
		order.Email = &email
	}
	if len(req.ResultData) > 0 {
		order.ResultData = datatypes.JSON(req.ResultData)
	}

	if err := s.orderRepo.CreateOrder(order, ctx); err != nil {
		return nil, err
	}

	resp := &response_models.CreateOrderResponse{
		OrderID:       orderID,
		Amount:        amount,
		AmountDisplay: FormatPrice(amount),
	}

	if s.cfg.IsSandbox() {
		resp.Mode = PaymentModeSandbox
		resp.RedirectURL = fmt.Sprintf("/payment/sandbox?orderId=%s", orderID)
		return resp, nil
	}

	// The pending order is kept so the same id can be reused once the
	// production gateway is wired up.
	resp.Mode = PaymentModeProduction
	return resp, utils.ErrNotImplemented
}

func (s *OrderService) ConfirmSandboxPayment(ctx context.Context, orderID string) (*response_models.ConfirmOrderResponse, error) {
	if !s.cfg.IsSandbox() {
		return nil, utils.ErrSandboxOnly
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing order id", utils.ErrInvalidInput)
	}

	order, err := s.orderRepo.GetOrderByID(orderID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	if order.Status != db_models.OrderStatusPending {
		return nil, utils.ErrInvalidOrderState
	}

	if err := s.orderRepo.UpdateOrderStatus(orderID, db_models.OrderStatusPaid, nil, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Best-effort report delivery. The confirmation response never
	// waits on it and a failure never rolls the transition back.
	if order.Email != nil && len(order.ResultData) > 0 {
		to := *order.Email
		testType := string(order.TestType)
		resultData := json.RawMessage(order.ResultData)
		go func() {
			if err := s.delivery.SendReport(context.Background(), to, testType, resultData, orderID); err != nil {
				log.Printf("Report delivery failed for order %s: %v", orderID, err)
			}
		}()
	}

	return &response_models.ConfirmOrderResponse{
		OrderID:  orderID,
		TestType: string(order.TestType),
	}, nil
}

func (s *OrderService) VerifyOrder(ctx context.Context, orderID string) (*response_models.VerifyOrderResponse, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing order id", utils.ErrInvalidInput)
	}

	order, err := s.orderRepo.GetOrderByID(orderID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	resp := &response_models.VerifyOrderResponse{
		OrderID:  order.ID,
		TestType: string(order.TestType),
		Status:   string(order.Status),
		IsPaid:   order.Status == db_models.OrderStatusPaid,
	}
	// Result data unlocks only once the order is paid.
	if resp.IsPaid && len(order.ResultData) > 0 {
		resp.ResultData = json.RawMessage(order.ResultData)
	}
	return resp, nil
}

func (s *OrderService) HandleProviderCallback(ctx context.Context, provider string) error {
	if !db_models.PaymentMethod(provider).Valid() {
		return fmt.Errorf("%w: unknown payment provider %q", utils.ErrInvalidInput, provider)
	}
	// Signature verification and the pending->paid transition via
	// UpdateOrderStatus belong here once provider credentials exist.
	return utils.ErrNotImplemented
}
