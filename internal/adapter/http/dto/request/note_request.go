package request

type CreateNoteRequest struct {
	JobID        int64  `json:"jobId" binding:"required"`
	Content      string `json:"content" binding:"required"`
	TechnicianID int64  `json:"technicianId"`
}
