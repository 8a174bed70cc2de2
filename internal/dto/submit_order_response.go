package dto

import "time"

type SubmitOrderResponse struct {
	TraceID     string    `json:"traceId"`
	OrderNumber string    `json:"orderNumber"`
	Message     string    `json:"message"`
	UnitPrice   int       `json:"unitPrice"`
	TotalPrice  int       `json:"totalPrice"`
	Timestamp   time.Time `json:"timestamp"`
}

type SubmitOrderErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
