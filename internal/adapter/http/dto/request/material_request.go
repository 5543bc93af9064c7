package request

type CreateMaterialRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// DefaultPrice is integer cents.
	DefaultPrice int64  `json:"defaultPrice"`
	Unit         string `json:"unit"`
}
