package usecase

import (
	"context"
	"errors"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrInvalidMaterial  = errors.New("invalid material")
)

type IMaterialUseCase interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	Get(ctx context.Context, id int64) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" || m.DefaultPrice < 0 {
		return entities.Material{}, ErrInvalidMaterial
	}
	return u.repo.CreateMaterial(ctx, m)
}

func (u *MaterialUseCase) Get(ctx context.Context, id int64) (entities.Material, error) {
	if id <= 0 {
		return entities.Material{}, ErrMaterialNotFound
	}
	m, err := u.repo.GetMaterial(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == 0 {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.ListMaterials(ctx)
}
