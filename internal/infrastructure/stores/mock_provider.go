package stores

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

// MockStoreProvider simulates searching local hardware stores against the
// static catalog. The same logical part gets an independently derived price
// and availability at each store, mimicking real market behavior.
//
// All randomness is injected so tests can pin it down.
type MockStoreProvider struct {
	varier   PriceVarier
	stock    func() bool
	distance func() string
}

var _ interfaces.IStoreProvider = (*MockStoreProvider)(nil)

// NewMockStoreProvider returns a provider with the default simulation:
// +/-15% price variance, 80% in-stock odds, 1-15 mile distances.
func NewMockStoreProvider() *MockStoreProvider {
	return &MockStoreProvider{
		varier: func(base int64) int64 {
			v := float64(base) * (0.85 + rand.Float64()*0.3)
			return int64(math.Round(v))
		},
		stock:    func() bool { return rand.Float64() > 0.2 },
		distance: func() string { return strconv.FormatFloat(1+rand.Float64()*14, 'f', 1, 64) + " miles" },
	}
}

// NewMockStoreProviderWithStrategy injects the variance, stock and distance
// strategies. Nil arguments keep the defaults.
func NewMockStoreProviderWithStrategy(varier PriceVarier, stock func() bool, distance func() string) *MockStoreProvider {
	p := NewMockStoreProvider()
	if varier != nil {
		p.varier = varier
	}
	if stock != nil {
		p.stock = stock
	}
	if distance != nil {
		p.distance = distance
	}
	return p
}

// Search matches the query case-insensitively against part name, description
// and category, then prices the matches per store. Zero matches yields an
// empty result, not an error.
func (p *MockStoreProvider) Search(_ context.Context, query string) ([]entities.StoreResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var matched []entities.StorePart
	for _, part := range catalogParts {
		if strings.Contains(strings.ToLower(part.Name), q) ||
			strings.Contains(strings.ToLower(part.Description), q) ||
			strings.Contains(strings.ToLower(part.Category), q) {
			matched = append(matched, part)
		}
	}
	if len(matched) == 0 {
		return []entities.StoreResult{}, nil
	}

	results := make([]entities.StoreResult, 0, len(catalogStores))
	for _, store := range catalogStores {
		parts := make([]entities.StorePart, 0, len(matched))
		for _, part := range matched {
			parts = append(parts, entities.StorePart{
				ID:          part.ID,
				Name:        part.Name,
				Price:       p.varier(part.Price),
				InStock:     p.stock(),
				Image:       part.Image,
				Description: part.Description,
				Category:    part.Category,
			})
		}
		results = append(results, entities.StoreResult{
			ID:       store.ID,
			Name:     store.Name,
			Distance: p.distance(),
			Address:  fmt.Sprintf("%s, %s, %s", store.Address, store.City, store.State),
			Parts:    parts,
		})
	}

	// Nearest store first.
	sort.Slice(results, func(i, j int) bool {
		return parseMiles(results[i].Distance) < parseMiles(results[j].Distance)
	})
	return results, nil
}

func parseMiles(distance string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(distance, " miles"), 64)
	if err != nil {
		return math.MaxFloat64
	}
	return f
}
