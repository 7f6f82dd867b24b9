package request_models

import "encoding/json"

type CreatePaymentRequest struct {
	TestType      string          `json:"testType"`
	PaymentMethod string          `json:"paymentMethod"`
	Email         string          `json:"email,omitempty"`
	ResultData    json.RawMessage `json:"resultData,omitempty"`
}

type SandboxConfirmRequest struct {
	OrderID string `json:"orderId"`
}
