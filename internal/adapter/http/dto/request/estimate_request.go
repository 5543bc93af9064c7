package request

import "techassist/internal/domain/entities"

// EstimateItemRequest creates or patches one estimate line. All monetary
// values are integer cents.
type EstimateItemRequest struct {
	JobID       int64  `json:"jobId"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	StoreSource string `json:"storeSource"`
	MaterialID  int64  `json:"materialId"`
}

func (r EstimateItemRequest) ToEntity() entities.EstimateItem {
	return entities.EstimateItem{
		JobID:       r.JobID,
		Type:        r.Type,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		StoreSource: r.StoreSource,
		MaterialID:  r.MaterialID,
	}
}

// SubmitEstimateRequest drives the submit flow. Status defaults to
// "submitted" when empty; Lock freezes totalAmount against later submits.
type SubmitEstimateRequest struct {
	JobID  int64  `json:"jobId" binding:"required"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
	Lock   bool   `json:"lock"`
}

// AddPartRequest adds a store search result to a job's estimate.
type AddPartRequest struct {
	JobID       int64  `json:"jobId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	UnitPrice   int64  `json:"unitPrice"`
	StoreSource string `json:"storeSource"`
	MaterialID  int64  `json:"materialId"`
}
