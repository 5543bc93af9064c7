package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IPhotoRepository abstracts persistence for job photos.
type IPhotoRepository interface {
	CreatePhoto(ctx context.Context, p entities.Photo) (entities.Photo, error)
	GetPhoto(ctx context.Context, id int64) (entities.Photo, error)
	ListPhotosByJob(ctx context.Context, jobID int64) ([]entities.Photo, error)
	UpdatePhotoAnalysis(ctx context.Context, id int64, analysis entities.PhotoAnalysis) (entities.Photo, error)
}
