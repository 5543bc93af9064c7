package usecase

import (
	"context"
	"errors"
	"testing"

	"techassist/internal/adapter/persistence/repository"
	"techassist/internal/domain/entities"
	mock_interfaces "techassist/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartSearchUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query rejected", func(t *testing.T) {
		uc := NewPartSearchUseCase(nil, nil, nil)
		if _, err := uc.Search(ctx, "   "); !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("expected ErrInvalidQuery, got %v", err)
		}
	})

	t.Run("query is trimmed before the provider sees it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIStoreProvider(ctrl)
		uc := NewPartSearchUseCase(provider, nil, nil)

		provider.EXPECT().Search(gomock.Any(), "pipe wrench").Return([]entities.StoreResult{}, nil)

		results, err := uc.Search(ctx, "  pipe wrench  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected empty results, got %d", len(results))
		}
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIStoreProvider(ctrl)
		uc := NewPartSearchUseCase(provider, nil, nil)

		provider.EXPECT().Search(gomock.Any(), "valve").Return(nil, errors.New("scraper crashed"))

		if _, err := uc.Search(ctx, "valve"); err == nil {
			t.Fatalf("expected provider error")
		}
	})
}

func TestPartSearchUseCase_SearchByImage(t *testing.T) {
	ctx := context.Background()
	image := "data:image/jpeg;base64,abc"

	t.Run("blank image rejected", func(t *testing.T) {
		uc := NewPartSearchUseCase(nil, nil, nil)
		if _, _, err := uc.SearchByImage(ctx, ""); !errors.Is(err, ErrInvalidImage) {
			t.Fatalf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("vision result feeds text search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIStoreProvider(ctrl)
		vision := mock_interfaces.NewMockIVisionProvider(ctrl)
		uc := NewPartSearchUseCase(provider, nil, vision)

		vision.EXPECT().IdentifyPart(gomock.Any(), image).Return("GFCI outlet", nil)
		provider.EXPECT().Search(gomock.Any(), "GFCI outlet").Return([]entities.StoreResult{{Name: "Store A"}}, nil)

		query, results, err := uc.SearchByImage(ctx, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query != "GFCI outlet" {
			t.Fatalf("expected identified query, got %q", query)
		}
		if len(results) != 1 {
			t.Fatalf("expected one store, got %d", len(results))
		}
	})

	t.Run("nil vision provider falls back to fixed query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIStoreProvider(ctrl)
		uc := NewPartSearchUseCase(provider, nil, nil)

		provider.EXPECT().Search(gomock.Any(), fallbackPartQuery).Return([]entities.StoreResult{}, nil)

		query, _, err := uc.SearchByImage(ctx, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query != fallbackPartQuery {
			t.Fatalf("expected fallback query, got %q", query)
		}
	})

	t.Run("vision failure falls back to fixed query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIStoreProvider(ctrl)
		vision := mock_interfaces.NewMockIVisionProvider(ctrl)
		uc := NewPartSearchUseCase(provider, nil, vision)

		vision.EXPECT().IdentifyPart(gomock.Any(), image).Return("", errors.New("timeout"))
		provider.EXPECT().Search(gomock.Any(), fallbackPartQuery).Return([]entities.StoreResult{}, nil)

		query, _, err := uc.SearchByImage(ctx, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query != fallbackPartQuery {
			t.Fatalf("expected fallback query, got %q", query)
		}
	})
}

func TestPartSearchUseCase_Compare(t *testing.T) {
	uc := NewPartSearchUseCase(nil, nil, nil)

	t.Run("cheapest in-stock wins over cheaper out-of-stock", func(t *testing.T) {
		rows := uc.Compare([]entities.StoreResult{
			{Name: "Store A", Parts: []entities.StorePart{{Name: "valve", Price: 1000, InStock: true}}},
			{Name: "Store B", Parts: []entities.StorePart{{Name: "valve", Price: 900, InStock: false}}},
			{Name: "Store C", Parts: []entities.StorePart{{Name: "valve", Price: 1200, InStock: true}}},
		})
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if rows[0].StoreName != "Store A" || !rows[0].BestPrice {
			t.Fatalf("expected Store A best, got %+v", rows[0])
		}
		if rows[2].StoreName != "Store B" {
			t.Fatalf("expected out-of-stock row last, got %+v", rows[2])
		}
		if rows[2].BestPrice {
			t.Fatalf("out-of-stock row must never be best")
		}
	})

	t.Run("price tie flags all tied rows", func(t *testing.T) {
		rows := uc.Compare([]entities.StoreResult{
			{Name: "Store A", Parts: []entities.StorePart{{Price: 500, InStock: true}}},
			{Name: "Store B", Parts: []entities.StorePart{{Price: 500, InStock: true}}},
		})
		if !rows[0].BestPrice || !rows[1].BestPrice {
			t.Fatalf("expected both tied rows flagged best: %+v", rows)
		}
	})

	t.Run("stores without matches are skipped", func(t *testing.T) {
		rows := uc.Compare([]entities.StoreResult{
			{Name: "Store A"},
			{Name: "Store B", Parts: []entities.StorePart{{Price: 100, InStock: true}}},
		})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("all out of stock means no best", func(t *testing.T) {
		rows := uc.Compare([]entities.StoreResult{
			{Name: "Store A", Parts: []entities.StorePart{{Price: 100, InStock: false}}},
		})
		if rows[0].BestPrice {
			t.Fatalf("expected no best-price flag")
		}
	})
}

func TestPartSearchUseCase_AddPartToEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid part", func(t *testing.T) {
		uc := NewPartSearchUseCase(nil, repository.NewMemoryStore(), nil)
		if _, err := uc.AddPartToEstimate(ctx, 1, entities.StorePart{Name: " "}, "Store A"); !errors.Is(err, ErrInvalidPart) {
			t.Fatalf("expected ErrInvalidPart, got %v", err)
		}
	})

	t.Run("creates one material line with store source", func(t *testing.T) {
		store := repository.NewMemoryStore()
		uc := NewPartSearchUseCase(nil, store, nil)

		item, err := uc.AddPartToEstimate(ctx, 3, entities.StorePart{Name: "Ball valve", Price: 1899, InStock: true}, "Columbus Hardware")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Type != entities.ItemTypeMaterial {
			t.Fatalf("expected material line, got %q", item.Type)
		}
		if item.Quantity != 1 || item.UnitPrice != 1899 {
			t.Fatalf("unexpected line values: %+v", item)
		}
		if item.StoreSource != "Columbus Hardware" {
			t.Fatalf("expected store source, got %q", item.StoreSource)
		}

		items, err := store.ListEstimateItemsByJob(ctx, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected exactly one item, got %d", len(items))
		}
	})
}
