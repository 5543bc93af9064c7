package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IVisionProvider abstracts the external image-analysis service.
//
// AnalyzeImage returns the fixed PhotoAnalysis contract; the implementation
// validates the raw provider output against that contract and returns an
// error on mismatch so callers can fall back to a canned result.
//
// IdentifyPart returns opaque free text suitable for reuse as a part-search
// query; callers must treat it exactly like user-typed input.
type IVisionProvider interface {
	AnalyzeImage(ctx context.Context, imageDataURL string) (entities.PhotoAnalysis, error)
	IdentifyPart(ctx context.Context, imageDataURL string) (string, error)
}

// ITextProvider abstracts the external text-generation service used to
// rewrite technician notes into customer-facing reports.
type ITextProvider interface {
	EnhanceNote(ctx context.Context, content string) (string, error)
}
