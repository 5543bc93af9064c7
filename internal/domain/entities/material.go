package entities

// Material is a static catalog entry used to prefill estimate items.
// DefaultPrice is integer cents.
type Material struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	DefaultPrice int64  `json:"defaultPrice"`
	Unit         string `json:"unit"`
}
