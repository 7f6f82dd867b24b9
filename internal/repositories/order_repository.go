package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"xinli/internal/models/db_models"
	"xinli/pkg/utils"
)

// StatusExtra carries the optional fields a status transition may
// record alongside the new status.
type StatusExtra struct {
	TransactionID string
	PaymentMethod db_models.PaymentMethod
}

type OrderRepositoryInterface interface {
	CreateOrder(order db_models.Order, ctx context.Context) error
	GetOrderByID(id string, ctx context.Context) (*db_models.Order, error)
	// UpdateOrderStatus silently no-ops when no row matches id; callers
	// needing that distinction must check existence first.
	UpdateOrderStatus(id string, status db_models.OrderStatus, extra *StatusExtra, ctx context.Context) error
	IsOrderPaid(id string, ctx context.Context) (bool, error)
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

type OrderRepository struct {
	db *gorm.DB
}

func (r *OrderRepository) CreateOrder(order db_models.Order, ctx context.Context) error {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (r *OrderRepository) GetOrderByID(id string, ctx context.Context) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateOrderStatus(id string, status db_models.OrderStatus, extra *StatusExtra, ctx context.Context) error {
	updates := map[string]interface{}{"status": status}

	if status == db_models.OrderStatusPaid {
		updates["paid_at"] = utils.NowUnixSeconds()
	}
	if extra != nil {
		if extra.TransactionID != "" {
			updates["transaction_id"] = extra.TransactionID
		}
		if extra.PaymentMethod != "" {
			updates["payment_method"] = extra.PaymentMethod
		}
	}

	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *OrderRepository) IsOrderPaid(id string, ctx context.Context) (bool, error) {
	order, err := r.GetOrderByID(id, ctx)
	if err != nil {
		return false, err
	}
	return order != nil && order.Status == db_models.OrderStatusPaid, nil
}
