package request

import "time"

type CreateJobRequest struct {
	WorkOrderNumber string     `json:"workOrderNumber" binding:"required"`
	CustomerID      int64      `json:"customerId" binding:"required"`
	TechnicianID    int64      `json:"technicianId"`
	Status          string     `json:"status"`
	Description     string     `json:"description"`
	Scheduled       *time.Time `json:"scheduled"`
	TimeZone        string     `json:"timeZone"`
}

// UpdateStatusRequest is shared by the job and estimate status routes.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
