package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrInvalidQuery = errors.New("invalid search query")
	ErrInvalidImage = errors.New("invalid image data")
	ErrInvalidPart  = errors.New("invalid part")
)

// fallbackPartQuery keeps image search usable when the vision provider is
// missing or failing; it matches the demo catalog the same way the canned
// photo analysis does.
const fallbackPartQuery = "Dimmer switch"

// IPartSearchUseCase aggregates part availability and pricing across local
// hardware stores.
type IPartSearchUseCase interface {
	Search(ctx context.Context, query string) ([]entities.StoreResult, error)
	SearchByImage(ctx context.Context, imageDataURL string) (string, []entities.StoreResult, error)
	Compare(results []entities.StoreResult) []entities.PriceRow
	AddPartToEstimate(ctx context.Context, jobID int64, part entities.StorePart, storeName string) (entities.EstimateItem, error)
}

type PartSearchUseCase struct {
	provider  interfaces.IStoreProvider
	estimates interfaces.IEstimateRepository
	vision    interfaces.IVisionProvider
}

var _ IPartSearchUseCase = (*PartSearchUseCase)(nil)

func NewPartSearchUseCase(provider interfaces.IStoreProvider, estimates interfaces.IEstimateRepository, vision interfaces.IVisionProvider) *PartSearchUseCase {
	return &PartSearchUseCase{provider: provider, estimates: estimates, vision: vision}
}

// Search runs the free-text store aggregation. Zero matches is an empty
// result, not an error.
func (u *PartSearchUseCase) Search(ctx context.Context, query string) ([]entities.StoreResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	return u.provider.Search(ctx, query)
}

// SearchByImage is the two-stage aggregation: the vision provider turns the
// image into opaque query text, and stage two treats that text exactly like
// user-typed input. Provider absence or failure degrades to a fixed query
// rather than failing the request.
func (u *PartSearchUseCase) SearchByImage(ctx context.Context, imageDataURL string) (string, []entities.StoreResult, error) {
	if strings.TrimSpace(imageDataURL) == "" {
		return "", nil, ErrInvalidImage
	}

	query := fallbackPartQuery
	if u.vision != nil {
		identified, err := u.vision.IdentifyPart(ctx, imageDataURL)
		if err != nil {
			log.Printf("[partsearch][usecase] part identification failed err=%v", err)
		} else {
			query = identified
		}
	}

	results, err := u.Search(ctx, query)
	if err != nil {
		return query, nil, err
	}
	return query, results, nil
}

// Compare builds the cross-store price comparison from each store's first
// matching part: in-stock rows sorted by ascending price, then out-of-stock
// rows (listed, never best). Every in-stock row tied for the lowest price is
// flagged best.
func (u *PartSearchUseCase) Compare(results []entities.StoreResult) []entities.PriceRow {
	rows := make([]entities.PriceRow, 0, len(results))
	for _, store := range results {
		if len(store.Parts) == 0 {
			continue
		}
		rows = append(rows, entities.PriceRow{
			StoreName: store.Name,
			Distance:  store.Distance,
			Address:   store.Address,
			Part:      store.Parts[0],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Part.InStock != rows[j].Part.InStock {
			return rows[i].Part.InStock
		}
		return rows[i].Part.Price < rows[j].Part.Price
	})

	var best int64 = -1
	for _, row := range rows {
		if row.Part.InStock && (best == -1 || row.Part.Price < best) {
			best = row.Part.Price
		}
	}
	if best >= 0 {
		for i := range rows {
			if rows[i].Part.InStock && rows[i].Part.Price == best {
				rows[i].BestPrice = true
			}
		}
	}
	return rows
}

// AddPartToEstimate converts one search result row into a material line with
// the chosen store recorded as its source.
func (u *PartSearchUseCase) AddPartToEstimate(ctx context.Context, jobID int64, part entities.StorePart, storeName string) (entities.EstimateItem, error) {
	if jobID <= 0 {
		return entities.EstimateItem{}, ErrInvalidJobID
	}
	if strings.TrimSpace(part.Name) == "" || part.Price < 0 {
		return entities.EstimateItem{}, ErrInvalidPart
	}

	return u.estimates.CreateEstimateItem(ctx, entities.EstimateItem{
		JobID:       jobID,
		Type:        entities.ItemTypeMaterial,
		Description: part.Name,
		Quantity:    1,
		UnitPrice:   part.Price,
		StoreSource: strings.TrimSpace(storeName),
	})
}
