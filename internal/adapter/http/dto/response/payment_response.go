package response

import (
	"encoding/json"
	"time"

	"techassist/internal/domain/entities"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	EstimateID int64     `json:"estimateId"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPaymentID string         `json:"providerPaymentId,omitempty"`
	ProviderStatus    string         `json:"providerStatus,omitempty"`
	ProviderPayload   map[string]any `json:"providerPayload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		EstimateID:        p.EstimateID,
		Amount:            p.Amount,
		Date:              p.Date,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			resp.ProviderPayload = payload
		}
	}
	return resp
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
