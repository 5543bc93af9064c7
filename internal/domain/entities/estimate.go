package entities

import "time"

// EstimateStatus represents the lifecycle of a job estimate.
//
// Domain notes:
//   - Observed transitions are draft -> submitted -> approved, but the status
//     mutator accepts any string; the enum is a convention, not a guard.
type EstimateStatus = string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSubmitted EstimateStatus = "submitted"
	EstimateStatusApproved  EstimateStatus = "approved"
)

// EstimateItemType distinguishes labor lines from material lines.
type EstimateItemType = string

const (
	ItemTypeLabor    EstimateItemType = "labor"
	ItemTypeMaterial EstimateItemType = "material"
)

// EstimateItem is a single priced line belonging to a job's estimate.
//
// Monetary representation:
//   - UnitPrice is integer cents; Quantity * UnitPrice is the line total.
//   - StoreSource records which hardware store a material line was priced
//     from ("Pending selection" for parts awaiting a store choice).
type EstimateItem struct {
	ID          int64            `json:"id"`
	JobID       int64            `json:"jobId"`
	Type        EstimateItemType `json:"type"`
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   int64            `json:"unitPrice"`
	StoreSource string           `json:"storeSource,omitempty"`
	MaterialID  int64            `json:"materialId,omitempty"`
}

// Estimate is the priced proposal for a job. One estimate per job.
//
// TotalAmount is integer cents and is recomputed from the job's items on
// every submit unless Locked is set, which freezes the quoted price.
type Estimate struct {
	ID          int64          `json:"id"`
	JobID       int64          `json:"jobId"`
	Status      EstimateStatus `json:"status"`
	TotalAmount int64          `json:"totalAmount"`
	Locked      bool           `json:"locked"`
	Created     time.Time      `json:"created"`
	Notes       string         `json:"notes,omitempty"`
}
