package usecase

import (
	"context"
	"errors"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrInvalidJob  = errors.New("invalid job")
)

type IJobUseCase interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	Get(ctx context.Context, id int64) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id int64, status entities.JobStatus) (entities.Job, error)
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.WorkOrderNumber = strings.TrimSpace(j.WorkOrderNumber)
	if j.WorkOrderNumber == "" || j.CustomerID <= 0 || j.TechnicianID <= 0 {
		return entities.Job{}, ErrInvalidJob
	}
	if strings.TrimSpace(j.Status) == "" {
		j.Status = entities.JobStatusScheduled
	}
	return u.repo.CreateJob(ctx, j)
}

func (u *JobUseCase) Get(ctx context.Context, id int64) (entities.Job, error) {
	if id <= 0 {
		return entities.Job{}, ErrJobNotFound
	}
	j, err := u.repo.GetJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == 0 {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.repo.ListJobs(ctx)
}

func (u *JobUseCase) ListByTechnician(ctx context.Context, technicianID int64) ([]entities.Job, error) {
	if technicianID <= 0 {
		return nil, ErrInvalidJob
	}
	return u.repo.ListJobsByTechnician(ctx, technicianID)
}

// UpdateStatus accepts any non-empty status string (the field is free text
// in the data model).
func (u *JobUseCase) UpdateStatus(ctx context.Context, id int64, status entities.JobStatus) (entities.Job, error) {
	if id <= 0 {
		return entities.Job{}, ErrJobNotFound
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Job{}, ErrInvalidStatus
	}

	j, err := u.repo.UpdateJobStatus(ctx, id, status)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == 0 {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}
