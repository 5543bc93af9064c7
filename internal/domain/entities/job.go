package entities

import "time"

// JobStatus values observed in the field app. The status mutator accepts any
// string, so these are conventions rather than an enforced state machine.
type JobStatus = string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCanceled   JobStatus = "canceled"
)

// Job is a work order assigned to a technician. Jobs are never deleted.
type Job struct {
	ID              int64      `json:"id"`
	WorkOrderNumber string     `json:"workOrderNumber"`
	CustomerID      int64      `json:"customerId"`
	TechnicianID    int64      `json:"technicianId"`
	Status          JobStatus  `json:"status"`
	Description     string     `json:"description"`
	Created         time.Time  `json:"created"`
	Scheduled       *time.Time `json:"scheduled"`
	TimeZone        string     `json:"timeZone"`
}
