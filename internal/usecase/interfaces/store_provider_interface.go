package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IStoreProvider abstracts the external store-data source (mock catalog or
// the scraper script) behind one contract so it can be swapped or mocked.
//
// A query with zero matches returns an empty slice, not an error.
type IStoreProvider interface {
	Search(ctx context.Context, query string) ([]entities.StoreResult, error)
}
