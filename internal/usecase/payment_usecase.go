package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotPayable   = errors.New("estimate not payable")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
	ErrNoPaymentGateway     = errors.New("payment gateway not configured")
)

// IPaymentUseCase charges invoice totals against submitted estimates.
//
// The charged amount is always derived server-side: subtotal of the job's
// current items plus tax. The caller cannot influence it.
type IPaymentUseCase interface {
	ChargeEstimate(ctx context.Context, estimateID int64, payload json.RawMessage) (entities.Payment, error)
	ListByEstimate(ctx context.Context, estimateID int64) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	estimates interfaces.IEstimateRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, estimates interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, estimates: estimates, gateway: gateway}
}

func (u *PaymentUseCase) ChargeEstimate(ctx context.Context, estimateID int64, payload json.RawMessage) (entities.Payment, error) {
	if estimateID <= 0 {
		return entities.Payment{}, ErrInvalidEstimateID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrNoPaymentGateway
	}

	est, err := u.estimates.GetEstimate(ctx, estimateID)
	if err != nil {
		return entities.Payment{}, err
	}
	if est.ID == 0 {
		return entities.Payment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusSubmitted && est.Status != entities.EstimateStatusApproved {
		return entities.Payment{}, ErrEstimateNotPayable
	}

	items, err := u.estimates.ListEstimateItemsByJob(ctx, est.JobID)
	if err != nil {
		return entities.Payment{}, err
	}
	subtotal := Subtotal(items)
	amount := subtotal + Tax(subtotal)

	req := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &req)
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = fmt.Sprintf("estimate-%d", estimateID)
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice for estimate %d", estimateID)
	}
	// The source of truth for the amount is the server-side computation.
	// Gateways bill in currency units, not cents.
	req["transaction_amount"] = float64(amount) / 100

	body, err := json.Marshal(req)
	if err != nil {
		return entities.Payment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed estimate_id=%d err=%v", estimateID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}

	p := entities.Payment{
		ID:                 uuid.NewString(),
		EstimateID:         estimateID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             mapProviderStatus(providerStatus),
		ProviderPaymentID:  providerID,
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
	}

	created, err := u.repo.CreatePayment(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] charge recorded estimate_id=%d payment_id=%s status=%s amount=%d", estimateID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *PaymentUseCase) ListByEstimate(ctx context.Context, estimateID int64) ([]entities.Payment, error) {
	if estimateID <= 0 {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.ListPaymentsByEstimate(ctx, estimateID)
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch providerStatus {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}
