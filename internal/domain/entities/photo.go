package entities

import "time"

// PhotoAnalysis is the fixed response contract of the vision provider.
//
// The provider output is opaque JSON validated at the infrastructure
// boundary; anything that does not match this shape is replaced with the
// canned fallback rather than propagated.
type PhotoAnalysis struct {
	Identified          string   `json:"identified"`
	Condition           string   `json:"condition"`
	Recommendations     string   `json:"recommendations"`
	Parts               []string `json:"parts"`
	RepairSteps         []string `json:"repair_steps,omitempty"`
	EstimatedRepairTime string   `json:"estimated_repair_time,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty"`
}

// Photo is a job-site capture stored inline as a base64 data URL.
// AIAnalysis is written by the analyze operation; last write wins.
type Photo struct {
	ID          int64          `json:"id"`
	JobID       int64          `json:"jobId"`
	Caption     string         `json:"caption"`
	DataURL     string         `json:"dataUrl"`
	Timestamp   time.Time      `json:"timestamp"`
	AIAnalysis  *PhotoAnalysis `json:"aiAnalysis"`
	BeforePhoto bool           `json:"beforePhoto"`
}
