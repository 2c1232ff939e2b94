package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]models.Document
}

func NewDocumentRepository() DocumentRepository {
	return &documentRepository{docs: make(map[uuid.UUID]models.Document)}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.docs[document.ID]; exists {
		return fmt.Errorf("failed to create document: duplicate id %s", document.ID)
	}
	d.docs[document.ID] = *document
	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return &doc, nil
}

// Delete implements DocumentRepository.
func (d *documentRepository) Delete(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	delete(d.docs, id)
	return nil
}
