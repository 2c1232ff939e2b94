package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
)

// Candidate is one entry of the in-memory session log.
type Candidate struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Filename         string                `json:"filename"`
	InternalFilename string                `json:"internal_filename"`
	Score            float64               `json:"score"`
	Experience       analysis.Seniority    `json:"exp"`
	FullResults      *analysis.MatchResult `json:"full_results,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}
