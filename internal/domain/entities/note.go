package entities

import "time"

// Note is a technician's free-form job note. EnhancedContent holds the
// AI-rewritten report and is overwritten on each re-enhancement.
type Note struct {
	ID              int64     `json:"id"`
	JobID           int64     `json:"jobId"`
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
	TechnicianID    int64     `json:"technicianId"`
	EnhancedContent string    `json:"enhancedContent,omitempty"`
}
