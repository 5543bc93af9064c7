package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrNoteNotFound  = errors.New("note not found")
	ErrInvalidPhoto  = errors.New("invalid photo")
	ErrInvalidNote   = errors.New("invalid note")
)

// PendingStoreSource marks an auto-created part line awaiting a manual store
// selection.
const PendingStoreSource = "Pending selection"

// placeholderAnalysis is returned when no vision provider is configured.
// It is deterministic so demo environments behave the same on every call.
func placeholderAnalysis() entities.PhotoAnalysis {
	return entities.PhotoAnalysis{
		Identified:      "Light switch",
		Condition:       "Broken",
		Recommendations: "Replace with dimmer switch",
		Parts:           []string{"Dimmer switch", "Wall plate", "Wiring connector"},
		RepairSteps: []string{
			"Turn off power at the breaker",
			"Remove the old switch",
			"Wire and mount the replacement",
			"Restore power and test",
		},
		EstimatedRepairTime: "30 minutes",
		SkillLevel:          "Intermediate",
	}
}

// fallbackAnalysis is substituted when the provider call fails or returns a
// shape that does not validate.
func fallbackAnalysis() entities.PhotoAnalysis {
	return entities.PhotoAnalysis{
		Identified:          "Unknown fixture",
		Condition:           "Requires inspection",
		Recommendations:     "Please have a technician evaluate this item",
		Parts:               []string{},
		EstimatedRepairTime: "Unknown",
		SkillLevel:          "Professional",
	}
}

// IAnnotationUseCase owns job photos and notes plus their AI annotations.
type IAnnotationUseCase interface {
	CreatePhoto(ctx context.Context, p entities.Photo) (entities.Photo, error)
	ListPhotosByJob(ctx context.Context, jobID int64) ([]entities.Photo, error)
	AnalyzePhoto(ctx context.Context, id int64) (entities.Photo, error)

	CreateNote(ctx context.Context, n entities.Note) (entities.Note, error)
	ListNotesByJob(ctx context.Context, jobID int64) ([]entities.Note, error)
	EnhanceNote(ctx context.Context, id int64) (entities.Note, error)
}

type AnnotationUseCase struct {
	photos    interfaces.IPhotoRepository
	notes     interfaces.INoteRepository
	estimates interfaces.IEstimateRepository
	vision    interfaces.IVisionProvider
	text      interfaces.ITextProvider
}

var _ IAnnotationUseCase = (*AnnotationUseCase)(nil)

// NewAnnotationUseCase wires the annotation flow. vision and text may be nil
// when no AI provider is configured; every operation then serves its
// deterministic placeholder instead of failing.
func NewAnnotationUseCase(
	photos interfaces.IPhotoRepository,
	notes interfaces.INoteRepository,
	estimates interfaces.IEstimateRepository,
	vision interfaces.IVisionProvider,
	text interfaces.ITextProvider,
) *AnnotationUseCase {
	return &AnnotationUseCase{photos: photos, notes: notes, estimates: estimates, vision: vision, text: text}
}

func (u *AnnotationUseCase) CreatePhoto(ctx context.Context, p entities.Photo) (entities.Photo, error) {
	if p.JobID <= 0 || strings.TrimSpace(p.DataURL) == "" {
		return entities.Photo{}, ErrInvalidPhoto
	}
	return u.photos.CreatePhoto(ctx, p)
}

func (u *AnnotationUseCase) ListPhotosByJob(ctx context.Context, jobID int64) ([]entities.Photo, error) {
	if jobID <= 0 {
		return nil, ErrInvalidJobID
	}
	return u.photos.ListPhotosByJob(ctx, jobID)
}

// AnalyzePhoto persists an analysis onto the photo (last write wins) and, as
// a side effect, materializes a draft estimate with one zero-priced line for
// the FIRST identified part when the job has no estimate yet. The two side
// effect writes happen in a single store transaction.
func (u *AnnotationUseCase) AnalyzePhoto(ctx context.Context, id int64) (entities.Photo, error) {
	if id <= 0 {
		return entities.Photo{}, ErrPhotoNotFound
	}
	photo, err := u.photos.GetPhoto(ctx, id)
	if err != nil {
		return entities.Photo{}, err
	}
	if photo.ID == 0 {
		return entities.Photo{}, ErrPhotoNotFound
	}

	var analysis entities.PhotoAnalysis
	switch {
	case u.vision == nil:
		analysis = placeholderAnalysis()
	default:
		analysis, err = u.vision.AnalyzeImage(ctx, photo.DataURL)
		if err != nil {
			log.Printf("[annotation][usecase] vision analysis failed photo_id=%d err=%v", id, err)
			analysis = fallbackAnalysis()
		}
	}

	updated, err := u.photos.UpdatePhotoAnalysis(ctx, id, analysis)
	if err != nil {
		return entities.Photo{}, err
	}

	u.materializeFirstPart(ctx, photo.JobID, analysis)
	return updated, nil
}

// materializeFirstPart creates draft-estimate + item for the first
// identified part. Skipped when the analysis names no parts or the job
// already has an estimate; failures are logged, never surfaced.
func (u *AnnotationUseCase) materializeFirstPart(ctx context.Context, jobID int64, analysis entities.PhotoAnalysis) {
	if len(analysis.Parts) == 0 {
		return
	}
	existing, err := u.estimates.GetEstimateByJob(ctx, jobID)
	if err != nil {
		log.Printf("[annotation][usecase] estimate lookup failed job_id=%d err=%v", jobID, err)
		return
	}
	if existing.ID != 0 {
		return
	}

	_, _, err = u.estimates.CreateEstimateWithItem(ctx,
		entities.Estimate{JobID: jobID, Status: entities.EstimateStatusDraft},
		entities.EstimateItem{
			JobID:       jobID,
			Type:        entities.ItemTypeMaterial,
			Description: analysis.Parts[0],
			Quantity:    1,
			UnitPrice:   0,
			StoreSource: PendingStoreSource,
		},
	)
	if err != nil {
		log.Printf("[annotation][usecase] draft estimate creation failed job_id=%d err=%v", jobID, err)
	}
}

func (u *AnnotationUseCase) CreateNote(ctx context.Context, n entities.Note) (entities.Note, error) {
	if n.JobID <= 0 || strings.TrimSpace(n.Content) == "" || n.TechnicianID <= 0 {
		return entities.Note{}, ErrInvalidNote
	}
	return u.notes.CreateNote(ctx, n)
}

func (u *AnnotationUseCase) ListNotesByJob(ctx context.Context, jobID int64) ([]entities.Note, error) {
	if jobID <= 0 {
		return nil, ErrInvalidJobID
	}
	return u.notes.ListNotesByJob(ctx, jobID)
}

// EnhanceNote rewrites the note into a customer-facing report. Without a
// configured provider it applies the deterministic template; on provider
// failure the original content is persisted as the enhancement so the caller
// still gets a usable result.
func (u *AnnotationUseCase) EnhanceNote(ctx context.Context, id int64) (entities.Note, error) {
	if id <= 0 {
		return entities.Note{}, ErrNoteNotFound
	}
	note, err := u.notes.GetNote(ctx, id)
	if err != nil {
		return entities.Note{}, err
	}
	if note.ID == 0 {
		return entities.Note{}, ErrNoteNotFound
	}

	var enhanced string
	switch {
	case u.text == nil:
		enhanced = placeholderEnhancement(note.Content)
	default:
		enhanced, err = u.text.EnhanceNote(ctx, note.Content)
		if err != nil {
			log.Printf("[annotation][usecase] note enhancement failed note_id=%d err=%v", id, err)
			enhanced = note.Content
		}
	}

	updated, err := u.notes.UpdateNoteEnhancement(ctx, id, enhanced)
	if err != nil {
		return entities.Note{}, err
	}
	return updated, nil
}

func placeholderEnhancement(content string) string {
	return "Upon inspection, I discovered that " + strings.ToLower(content) +
		" This appears to be caused by normal wear and tear. I recommend a complete replacement " +
		"of the affected components to ensure proper functioning and prevent future issues."
}
