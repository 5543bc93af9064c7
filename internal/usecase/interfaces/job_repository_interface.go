package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IJobRepository abstracts persistence for jobs (work orders).
type IJobRepository interface {
	CreateJob(ctx context.Context, j entities.Job) (entities.Job, error)
	GetJob(ctx context.Context, id int64) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
	ListJobsByTechnician(ctx context.Context, technicianID int64) ([]entities.Job, error)
	ListJobsByCustomer(ctx context.Context, customerID int64) ([]entities.Job, error)
	UpdateJobStatus(ctx context.Context, id int64, status entities.JobStatus) (entities.Job, error)
}
