package db_models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestType string

const (
	TestTypeMBTI   TestType = "mbti"
	TestTypeIQ     TestType = "iq"
	TestTypeCareer TestType = "career"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeMBTI, TestTypeIQ, TestTypeCareer:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusFailed   OrderStatus = "failed"
	OrderStatusRefunded OrderStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodWechat PaymentMethod = "wechat"
	PaymentMethodAlipay PaymentMethod = "alipay"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodWechat || m == PaymentMethodAlipay
}

// Order is one payment transaction tied to one test attempt.
// The id is an opaque token supplied at creation, so no uuid hook here.
type Order struct {
	ID       string      `gorm:"primaryKey"`
	TestType TestType    `gorm:"index;size:16"`
	Amount   int64       // minor currency units, e.g. 999 = ¥9.99
	Status   OrderStatus `gorm:"index;size:16;default:pending"`

	PaymentMethod *PaymentMethod `gorm:"size:16"` // nullable until paid
	TransactionID *string        // external provider reference
	Email         *string

	// Unix seconds. PaidAt is stamped exactly once, on pending -> paid.
	CreatedAt int64  `gorm:"autoCreateTime"`
	PaidAt    *int64

	// Serialized result record matching TestType.
	ResultData datatypes.JSON
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}
