package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

// Evaluation is an asynchronous match job. The job description comes either
// from an uploaded document or from inline text.
type Evaluation struct {
	ID           uuid.UUID             `json:"id"`
	CVDocumentID uuid.UUID             `json:"cv_document_id"`
	JDDocumentID *uuid.UUID            `json:"jd_document_id,omitempty"`
	JDText       string                `json:"-"`
	Status       EvaluationStatus      `json:"status"`
	Result       *analysis.MatchResult `json:"result,omitempty"`
	ErrorMessage string                `json:"error_message,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
