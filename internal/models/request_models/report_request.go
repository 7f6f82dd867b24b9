package request_models

import "encoding/json"

type GenerateReportRequest struct {
	TestType   string          `json:"testType"`
	ResultData json.RawMessage `json:"resultData"`
}

type SendReportEmailRequest struct {
	To         string          `json:"to"`
	TestType   string          `json:"testType"`
	ResultData json.RawMessage `json:"resultData"`
	OrderID    string          `json:"orderId,omitempty"`
}
