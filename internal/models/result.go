package models

import "alfredoptarigan/cv-matcher/internal/analysis"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

// EvaluateRequest queues an evaluation. Exactly one of JDDocumentID and
// JDText is expected; JDText wins when both are set.
type EvaluateRequest struct {
	CVDocumentID string `json:"cv_document_id"`
	JDDocumentID string `json:"jd_document_id"`
	JDText       string `json:"jd_text"`
}

type EvaluateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Result       *analysis.MatchResult `json:"result,omitempty"`
	ErrorMessage *string               `json:"error_message,omitempty"`
}

// CandidateResult is a MatchResult tagged with the CV it was computed for.
type CandidateResult struct {
	CandidateID    string `json:"candidate_id"`
	CVFilename     string `json:"cv_filename"`
	CVInternalName string `json:"cv_internal_filename"`
	*analysis.MatchResult
}

type MatchResponse struct {
	TotalCVs int               `json:"total_cvs"`
	Results  []CandidateResult `json:"results"`
}

type ClassifyRequest struct {
	Text string `json:"text"`
}

type ClassifyResponse struct {
	DocumentType analysis.DocumentType         `json:"document_type"`
	CV           analysis.ClassificationResult `json:"cv"`
	JD           analysis.ClassificationResult `json:"jd"`
}
