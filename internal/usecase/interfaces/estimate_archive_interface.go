package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IEstimateArchive is a write-through archive for submitted estimates
// (DynamoDB in production). Archive failures are logged by callers and never
// fail the originating request.
type IEstimateArchive interface {
	ArchiveEstimate(ctx context.Context, e entities.Estimate) error
}
