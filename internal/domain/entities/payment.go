package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the invoice payment outcome.
type PaymentStatus = string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is an invoice payment recorded against a submitted estimate.
//
// Amount is the charged total in integer cents (estimate subtotal plus tax).
// ProviderPayloadRaw keeps the gateway response body for traceability.
type Payment struct {
	ID         string        `json:"id"`
	EstimateID int64         `json:"estimateId"`
	Amount     int64         `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPaymentID  string          `json:"providerPaymentId,omitempty"`
	ProviderStatus     string          `json:"providerStatus,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"providerPayloadRaw,omitempty"`
}
