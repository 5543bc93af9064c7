package request

type CreatePhotoRequest struct {
	JobID       int64  `json:"jobId" binding:"required"`
	Caption     string `json:"caption"`
	DataURL     string `json:"dataUrl" binding:"required"`
	BeforePhoto bool   `json:"beforePhoto"`
}

// ImageSearchRequest carries an inline base64 data URL, same encoding as a
// stored photo.
type ImageSearchRequest struct {
	ImageData string `json:"imageData" binding:"required"`
}
