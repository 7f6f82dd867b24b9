package response_models

import "encoding/json"

type CreateOrderResponse struct {
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amountDisplay"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
	Mode          string `json:"mode"`
}

type ConfirmOrderResponse struct {
	OrderID  string `json:"orderId"`
	TestType string `json:"testType"`
}

type VerifyOrderResponse struct {
	OrderID  string          `json:"orderId"`
	TestType string          `json:"testType"`
	Status   string          `json:"status"`
	IsPaid   bool            `json:"isPaid"`
	// Only populated once the order is paid.
	ResultData json.RawMessage `json:"resultData,omitempty"`
}

type SendReportEmailResponse struct {
	OrderID string `json:"orderId,omitempty"`
	Sent    bool   `json:"sent"`
}
