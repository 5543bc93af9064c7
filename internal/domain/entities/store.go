package entities

// StorePart is one catalog entry as priced by a specific store.
// Price is integer cents; availability and price for the same logical part
// vary independently per store.
type StorePart struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	InStock     bool   `json:"inStock"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// StoreResult is a hardware store plus the subset of its catalog matching a
// search query.
type StoreResult struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Distance string      `json:"distance"`
	Address  string      `json:"address"`
	Parts    []StorePart `json:"parts"`
}

// PriceRow is one line of a cross-store price comparison for a part.
// BestPrice marks the cheapest in-stock row; out-of-stock rows are listed
// but never designated best.
type PriceRow struct {
	StoreName string    `json:"storeName"`
	Distance  string    `json:"distance"`
	Address   string    `json:"address"`
	Part      StorePart `json:"part"`
	BestPrice bool      `json:"bestPrice"`
}
