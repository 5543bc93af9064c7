package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for invoice payments.
type IPaymentRepository interface {
	CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListPaymentsByEstimate(ctx context.Context, estimateID int64) ([]entities.Payment, error)
}
