package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// INoteRepository abstracts persistence for job notes.
// ListNotesByJob returns notes newest first.
type INoteRepository interface {
	CreateNote(ctx context.Context, n entities.Note) (entities.Note, error)
	GetNote(ctx context.Context, id int64) (entities.Note, error)
	ListNotesByJob(ctx context.Context, jobID int64) ([]entities.Note, error)
	UpdateNoteEnhancement(ctx context.Context, id int64, enhancedContent string) (entities.Note, error)
}
