package stores

import (
	"context"
	"testing"
)

func fixedProvider() *MockStoreProvider {
	return NewMockStoreProviderWithStrategy(
		func(base int64) int64 { return base },
		func() bool { return true },
		func() string { return "2.0 miles" },
	)
}

func TestMockStoreProvider_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results, err := fixedProvider().Search(ctx, "DIMMER")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(catalogStores) {
			t.Fatalf("expected one result per store, got %d", len(results))
		}
		for _, store := range results {
			for _, part := range store.Parts {
				if part.Name == "Wall Plate - Single Switch" {
					t.Fatalf("unmatched part leaked into results")
				}
			}
		}
	})

	t.Run("matches category", func(t *testing.T) {
		results, err := fixedProvider().Search(ctx, "electrical")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) == 0 || len(results[0].Parts) == 0 {
			t.Fatalf("expected category matches")
		}
	})

	t.Run("zero matches is empty not error", func(t *testing.T) {
		results, err := fixedProvider().Search(ctx, "flux capacitor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected empty results, got %d", len(results))
		}
	})

	t.Run("identity varier keeps catalog price", func(t *testing.T) {
		results, err := fixedProvider().Search(ctx, "Copper Wire 14-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, store := range results {
			if len(store.Parts) != 1 {
				t.Fatalf("expected exactly one match per store, got %d", len(store.Parts))
			}
			if store.Parts[0].Price != 7995 {
				t.Fatalf("expected base price 7995, got %d", store.Parts[0].Price)
			}
		}
	})

	t.Run("stores sorted by ascending distance", func(t *testing.T) {
		distances := []string{"9.5 miles", "1.2 miles", "4.0 miles", "7.3 miles"}
		i := -1
		p := NewMockStoreProviderWithStrategy(
			func(base int64) int64 { return base },
			func() bool { return true },
			func() string { i++; return distances[i%len(distances)] },
		)

		results, err := p.Search(ctx, "dimmer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := 1; j < len(results); j++ {
			if parseMiles(results[j-1].Distance) > parseMiles(results[j].Distance) {
				t.Fatalf("results not sorted by distance: %q before %q", results[j-1].Distance, results[j].Distance)
			}
		}
	})

	t.Run("per-store prices vary independently", func(t *testing.T) {
		call := int64(0)
		p := NewMockStoreProviderWithStrategy(
			func(base int64) int64 { call++; return base + call },
			func() bool { return true },
			func() string { return "2.0 miles" },
		)

		results, err := p.Search(ctx, "Copper Wire 14-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := map[int64]bool{}
		for _, store := range results {
			if seen[store.Parts[0].Price] {
				t.Fatalf("expected distinct per-store price, repeated %d", store.Parts[0].Price)
			}
			seen[store.Parts[0].Price] = true
		}
	})
}

func TestParseMiles(t *testing.T) {
	if got := parseMiles("3.4 miles"); got != 3.4 {
		t.Fatalf("expected 3.4, got %v", got)
	}
	if got := parseMiles("garbage"); got <= 1e18 {
		t.Fatalf("expected sentinel for unparsable distance, got %v", got)
	}
}
