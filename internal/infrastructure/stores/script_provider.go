package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"sort"
	"time"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

const scriptTimeout = 20 * time.Second

// scriptRecord is one row of the scraper script's JSON array output.
type scriptRecord struct {
	ID          int64  `json:"id"`
	Store       string `json:"store"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	InStock     bool   `json:"inStock"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Distance    string `json:"distance"`
}

// ScriptStoreProvider invokes the external scraper script (the Python
// collaborator) and regroups its flat record list into per-store results.
// The script receives the query as its sole extra argument and must print a
// JSON array of records to stdout.
type ScriptStoreProvider struct {
	command string
	args    []string
}

var _ interfaces.IStoreProvider = (*ScriptStoreProvider)(nil)

func NewScriptStoreProvider(command string, args ...string) *ScriptStoreProvider {
	return &ScriptStoreProvider{command: command, args: args}
}

func (p *ScriptStoreProvider) Search(ctx context.Context, query string) ([]entities.StoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	args := append(append([]string{}, p.args...), query)
	cmd := exec.CommandContext(ctx, p.command, args...)
	out, err := cmd.Output()
	if err != nil {
		log.Printf("[stores][script] scraper failed command=%s err=%v", p.command, err)
		return nil, fmt.Errorf("store scraper: %w", err)
	}

	var records []scriptRecord
	if err := json.Unmarshal(out, &records); err != nil {
		log.Printf("[stores][script] scraper output not json err=%v", err)
		return nil, fmt.Errorf("store scraper output: %w", err)
	}

	byStore := make(map[string]*entities.StoreResult)
	order := make([]string, 0)
	for _, rec := range records {
		sr, ok := byStore[rec.Store]
		if !ok {
			sr = &entities.StoreResult{
				ID:       int64(len(order) + 1),
				Name:     rec.Store,
				Distance: rec.Distance,
				Address:  rec.Address,
			}
			byStore[rec.Store] = sr
			order = append(order, rec.Store)
		}
		sr.Parts = append(sr.Parts, entities.StorePart{
			ID:          rec.ID,
			Name:        rec.Name,
			Price:       rec.Price,
			InStock:     rec.InStock,
			Image:       rec.Image,
			Description: rec.Description,
		})
	}

	results := make([]entities.StoreResult, 0, len(order))
	for _, name := range order {
		results = append(results, *byStore[name])
	}
	sort.Slice(results, func(i, j int) bool {
		return parseMiles(results[i].Distance) < parseMiles(results[j].Distance)
	})
	return results, nil
}
