package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IMaterialRepository abstracts persistence for the material catalog.
type IMaterialRepository interface {
	CreateMaterial(ctx context.Context, m entities.Material) (entities.Material, error)
	GetMaterial(ctx context.Context, id int64) (entities.Material, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
}
