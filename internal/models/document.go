package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypeCV DocumentType = "cv"
	DocumentTypeJD DocumentType = "jd"
)

// Document is an uploaded file kept in the upload directory.
type Document struct {
	ID               uuid.UUID    `json:"id"`
	Filename         string       `json:"filename"`
	OriginalFileName string       `json:"original_filename"`
	FileType         DocumentType `json:"file_type"`
	FilePath         string       `json:"-"`
	CreatedAt        time.Time    `json:"created_at"`
}
