package repository

import (
	"context"
	"errors"
	"testing"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

func TestMemoryStore_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.CreateCustomer(ctx, entities.Customer{Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.CreateCustomer(ctx, entities.Customer{Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	// counters are per entity type
	job, err := s.CreateJob(ctx, entities.Job{WorkOrderNumber: "WO1", CustomerID: first.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != 1 {
		t.Fatalf("expected job id 1, got %d", job.ID)
	}
}

func TestMemoryStore_GetMissingIsZeroValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	job, err := s.GetJob(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != 0 {
		t.Fatalf("expected zero value for missing job, got %+v", job)
	}
}

func TestMemoryStore_EstimateUniquenessPerJob(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.CreateEstimate(ctx, entities.Estimate{JobID: 1, Status: entities.EstimateStatusDraft}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.CreateEstimate(ctx, entities.Estimate{JobID: 1, Status: entities.EstimateStatusDraft})
	if !errors.Is(err, interfaces.ErrDuplicateEstimate) {
		t.Fatalf("expected ErrDuplicateEstimate, got %v", err)
	}

	// other jobs are unaffected
	if _, err := s.CreateEstimate(ctx, entities.Estimate{JobID: 2, Status: entities.EstimateStatusDraft}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMemoryStore_CreateEstimateWithItem(t *testing.T) {
	ctx := context.Background()

	t.Run("writes both records", func(t *testing.T) {
		s := NewMemoryStore()
		est, item, err := s.CreateEstimateWithItem(ctx,
			entities.Estimate{JobID: 1, Status: entities.EstimateStatusDraft},
			entities.EstimateItem{Type: entities.ItemTypeMaterial, Description: "Dimmer switch", Quantity: 1},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ID == 0 || item.ID == 0 {
			t.Fatalf("expected both ids assigned: %+v %+v", est, item)
		}
		if item.JobID != est.JobID {
			t.Fatalf("item job %d does not match estimate job %d", item.JobID, est.JobID)
		}
	})

	t.Run("writes neither on duplicate", func(t *testing.T) {
		s := NewMemoryStore()
		if _, err := s.CreateEstimate(ctx, entities.Estimate{JobID: 1, Status: entities.EstimateStatusDraft}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, _, err := s.CreateEstimateWithItem(ctx,
			entities.Estimate{JobID: 1, Status: entities.EstimateStatusDraft},
			entities.EstimateItem{Type: entities.ItemTypeMaterial, Description: "x", Quantity: 1},
		)
		if !errors.Is(err, interfaces.ErrDuplicateEstimate) {
			t.Fatalf("expected ErrDuplicateEstimate, got %v", err)
		}

		items, err := s.ListEstimateItemsByJob(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no item written on failed transaction, got %d", len(items))
		}
	})
}

func TestMemoryStore_DeletedItemIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a, _ := s.CreateEstimateItem(ctx, entities.EstimateItem{JobID: 1, Description: "a", Quantity: 1})
	deleted, err := s.DeleteEstimateItem(ctx, a.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}

	b, _ := s.CreateEstimateItem(ctx, entities.EstimateItem{JobID: 1, Description: "b", Quantity: 1})
	if b.ID <= a.ID {
		t.Fatalf("expected fresh id after delete, got %d (deleted %d)", b.ID, a.ID)
	}

	deleted, err = s.DeleteEstimateItem(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatalf("expected second delete of %d to report missing", a.ID)
	}
}

func TestMemoryStore_NotesNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	older, _ := s.CreateNote(ctx, entities.Note{JobID: 1, Content: "first", TechnicianID: 1})
	newer, _ := s.CreateNote(ctx, entities.Note{JobID: 1, Content: "second", TechnicianID: 1})

	notes, err := s.ListNotesByJob(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != newer.ID || notes[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v", notes)
	}
}

func TestMemoryStore_PhotoAnalysisLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	photo, _ := s.CreatePhoto(ctx, entities.Photo{JobID: 1, DataURL: "data:image/jpeg;base64,x"})

	if _, err := s.UpdatePhotoAnalysis(ctx, photo.ID, entities.PhotoAnalysis{Identified: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated, err := s.UpdatePhotoAnalysis(ctx, photo.ID, entities.PhotoAnalysis{Identified: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.AIAnalysis == nil || updated.AIAnalysis.Identified != "second" {
		t.Fatalf("expected last analysis kept, got %+v", updated.AIAnalysis)
	}
}

func TestNewSeededMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewSeededMemoryStore()

	user, err := s.GetUserByUsername(ctx, "tech1")
	if err != nil || user.ID == 0 {
		t.Fatalf("expected seeded technician, got %+v err=%v", user, err)
	}

	customers, err := s.ListCustomers(ctx)
	if err != nil || len(customers) != 1 || customers[0].Name != "Grande Deluxe" {
		t.Fatalf("expected seeded customer, got %+v err=%v", customers, err)
	}

	materials, err := s.ListMaterials(ctx)
	if err != nil || len(materials) != 2 {
		t.Fatalf("expected two seeded materials, got %+v err=%v", materials, err)
	}

	jobs, err := s.ListJobs(ctx)
	if err != nil || len(jobs) != 1 {
		t.Fatalf("expected one seeded job, got %+v err=%v", jobs, err)
	}
	if jobs[0].WorkOrderNumber != "252578" || jobs[0].Status != entities.JobStatusInProgress {
		t.Fatalf("unexpected seeded job: %+v", jobs[0])
	}
}
