package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateItemNotFound  = errors.New("estimate item not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidJobID          = errors.New("invalid job id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidEstimateItem   = errors.New("invalid estimate item")
	ErrInvalidStatus         = errors.New("invalid status")
)

// TaxRate is the fixed sales tax applied to invoice totals (8.25%).
const TaxRate = 0.0825

// Subtotal sums quantity * unit price over the items. The sum is
// order-independent and 0 for an empty list. All values are integer cents.
func Subtotal(items []entities.EstimateItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// Tax returns the tax on a subtotal in integer cents, rounded half-up to the
// nearest cent.
func Tax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * TaxRate))
}

// IEstimateUseCase exposes estimate and line-item operations.
//
// Submit semantics: the first submit for a job creates the estimate with
// totalAmount equal to the subtotal at that instant; later submits update
// the status AND recompute totalAmount from the current items, unless the
// estimate is locked (locked freezes the quoted price).
type IEstimateUseCase interface {
	AddItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error)
	UpdateItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItemsByJob(ctx context.Context, jobID int64) ([]entities.EstimateItem, error)

	Submit(ctx context.Context, jobID int64, status entities.EstimateStatus, notes string, lock bool) (entities.Estimate, error)
	GetByJob(ctx context.Context, jobID int64) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, id int64, status entities.EstimateStatus) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	archive interfaces.IEstimateArchive
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the estimate flow. archive may be nil; archiving
// is best-effort and never fails a request.
func NewEstimateUseCase(repo interfaces.IEstimateRepository, archive interfaces.IEstimateArchive) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, archive: archive}
}

func (u *EstimateUseCase) AddItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error) {
	if err := validateItem(item); err != nil {
		return entities.EstimateItem{}, err
	}
	item.Description = strings.TrimSpace(item.Description)
	return u.repo.CreateEstimateItem(ctx, item)
}

func (u *EstimateUseCase) UpdateItem(ctx context.Context, item entities.EstimateItem) (entities.EstimateItem, error) {
	if item.ID <= 0 {
		return entities.EstimateItem{}, ErrEstimateItemNotFound
	}
	if item.Quantity < 0 || item.UnitPrice < 0 {
		return entities.EstimateItem{}, ErrInvalidEstimateItem
	}

	updated, err := u.repo.UpdateEstimateItem(ctx, item)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if updated.ID == 0 {
		return entities.EstimateItem{}, ErrEstimateItemNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrEstimateItemNotFound
	}
	deleted, err := u.repo.DeleteEstimateItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateItemNotFound
	}
	return nil
}

func (u *EstimateUseCase) ListItemsByJob(ctx context.Context, jobID int64) ([]entities.EstimateItem, error) {
	if jobID <= 0 {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListEstimateItemsByJob(ctx, jobID)
}

func (u *EstimateUseCase) Submit(ctx context.Context, jobID int64, status entities.EstimateStatus, notes string, lock bool) (entities.Estimate, error) {
	if jobID <= 0 {
		return entities.Estimate{}, ErrInvalidJobID
	}
	status = strings.TrimSpace(status)
	if status == "" {
		status = entities.EstimateStatusSubmitted
	}

	items, err := u.repo.ListEstimateItemsByJob(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	subtotal := Subtotal(items)

	existing, err := u.repo.GetEstimateByJob(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}

	if existing.ID == 0 {
		created, err := u.repo.CreateEstimate(ctx, entities.Estimate{
			JobID:       jobID,
			Status:      status,
			TotalAmount: subtotal,
			Locked:      lock,
			Notes:       strings.TrimSpace(notes),
		})
		if err != nil {
			if errors.Is(err, interfaces.ErrDuplicateEstimate) {
				return entities.Estimate{}, ErrEstimateAlreadyExists
			}
			return entities.Estimate{}, err
		}
		u.archiveEstimate(ctx, created)
		return created, nil
	}

	updated, err := u.repo.UpdateEstimateStatus(ctx, existing.ID, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !existing.Locked {
		updated, err = u.repo.UpdateEstimateTotal(ctx, existing.ID, subtotal)
		if err != nil {
			return entities.Estimate{}, err
		}
	}
	u.archiveEstimate(ctx, updated)
	return updated, nil
}

func (u *EstimateUseCase) GetByJob(ctx context.Context, jobID int64) (entities.Estimate, error) {
	if jobID <= 0 {
		return entities.Estimate{}, ErrInvalidJobID
	}
	e, err := u.repo.GetEstimateByJob(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// UpdateStatus accepts any non-empty status string; the lifecycle enum is a
// convention, not a guard.
func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id int64, status entities.EstimateStatus) (entities.Estimate, error) {
	if id <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Estimate{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateEstimateStatus(ctx, id, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.archiveEstimate(ctx, updated)
	return updated, nil
}

func (u *EstimateUseCase) archiveEstimate(ctx context.Context, e entities.Estimate) {
	if u.archive == nil {
		return
	}
	if e.Status != entities.EstimateStatusSubmitted && e.Status != entities.EstimateStatusApproved {
		return
	}
	if err := u.archive.ArchiveEstimate(ctx, e); err != nil {
		log.Printf("[estimate][usecase] archive failed estimate_id=%d err=%v", e.ID, err)
	}
}

func validateItem(item entities.EstimateItem) error {
	if item.JobID <= 0 {
		return ErrInvalidJobID
	}
	if item.Type != entities.ItemTypeLabor && item.Type != entities.ItemTypeMaterial {
		return ErrInvalidEstimateItem
	}
	if strings.TrimSpace(item.Description) == "" {
		return ErrInvalidEstimateItem
	}
	if item.Quantity <= 0 || item.UnitPrice < 0 {
		return ErrInvalidEstimateItem
	}
	return nil
}
