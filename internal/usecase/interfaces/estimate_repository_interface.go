package interfaces

import (
	"context"
	"errors"

	"techassist/internal/domain/entities"
)

// ErrDuplicateEstimate is returned by CreateEstimate (and
// CreateEstimateWithItem) when the job already has an estimate.
var ErrDuplicateEstimate = errors.New("estimate already exists for job")

// IEstimateRepository abstracts persistence for estimates and their line
// items.
//
// Invariants the implementation must uphold:
//   - one estimate per job: CreateEstimate fails when the job already has one
//   - item ids are never reused after a delete
//   - CreateEstimateWithItem writes the estimate and the item atomically
//     (both or neither); it backs the photo-analysis side effect
type IEstimateRepository interface {
	CreateEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id int64) (entities.Estimate, error)
	GetEstimateByJob(ctx context.Context, jobID int64) (entities.Estimate, error)
	UpdateEstimateStatus(ctx context.Context, id int64, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateEstimateTotal(ctx context.Context, id int64, totalAmount int64) (entities.Estimate, error)
	CreateEstimateWithItem(ctx context.Context, e entities.Estimate, item entities.EstimateItem) (entities.Estimate, entities.EstimateItem, error)

	CreateEstimateItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error)
	GetEstimateItem(ctx context.Context, id int64) (entities.EstimateItem, error)
	ListEstimateItemsByJob(ctx context.Context, jobID int64) ([]entities.EstimateItem, error)
	UpdateEstimateItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error)
	DeleteEstimateItem(ctx context.Context, id int64) (bool, error)
}
