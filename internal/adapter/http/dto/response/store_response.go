package response

import "techassist/internal/domain/entities"

// ImageSearchResponse carries the vision-derived query alongside the results
// so the client can show what the image was interpreted as.
type ImageSearchResponse struct {
	Query   string                 `json:"query"`
	Results []entities.StoreResult `json:"results"`
}
