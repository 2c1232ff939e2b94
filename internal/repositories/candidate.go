package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/models"
)

// CandidateRepository is the session log of processed CVs, newest first.
type CandidateRepository interface {
	Add(candidate *models.Candidate) error
	List() []models.Candidate
	FindByID(id uuid.UUID) (*models.Candidate, error)
	Delete(id uuid.UUID) error
}

type candidateRepository struct {
	mu         sync.RWMutex
	candidates []models.Candidate
}

func NewCandidateRepository() CandidateRepository {
	return &candidateRepository{}
}

func (r *candidateRepository) Add(candidate *models.Candidate) error {
	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now()
	}
	if candidate.Name == "" {
		candidate.Name = "Unknown"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.candidates = append([]models.Candidate{*candidate}, r.candidates...)
	return nil
}

func (r *candidateRepository) List() []models.Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.candidates {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
}

func (r *candidateRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.candidates {
		if c.ID == id {
			r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
}
