package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
)

type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindByID(id uuid.UUID) (*models.Evaluation, error)
	// Claim moves a queued evaluation to processing. It returns false when
	// the evaluation was already claimed by another worker.
	Claim(id uuid.UUID) (bool, error)
	UpdateResult(id uuid.UUID, result *analysis.MatchResult) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	mu    sync.RWMutex
	evals map[uuid.UUID]*models.Evaluation
	now   func() time.Time
}

func NewEvaluationRepository() EvaluationRepository {
	return &evaluationRepository{
		evals: make(map[uuid.UUID]*models.Evaluation),
		now:   time.Now,
	}
}

func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if eval.ID == uuid.Nil {
		eval.ID = uuid.New()
	}
	now := r.now()
	if eval.CreatedAt.IsZero() {
		eval.CreatedAt = now
	}
	eval.UpdatedAt = now
	if eval.Status == "" {
		eval.Status = models.StatusQueued
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.evals[eval.ID]; exists {
		return fmt.Errorf("failed to create evaluation: duplicate id %s", eval.ID)
	}
	stored := *eval
	r.evals[eval.ID] = &stored
	return nil
}

func (r *evaluationRepository) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	eval, ok := r.evals[id]
	if !ok {
		return nil, fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
	}
	out := *eval
	return &out, nil
}

func (r *evaluationRepository) Claim(id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	eval, ok := r.evals[id]
	if !ok {
		return false, fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
	}
	if eval.Status != models.StatusQueued {
		return false, nil
	}
	eval.Status = models.StatusProcessing
	eval.UpdatedAt = r.now()
	return true, nil
}

func (r *evaluationRepository) UpdateResult(id uuid.UUID, result *analysis.MatchResult) error {
	return r.update(id, func(eval *models.Evaluation) {
		eval.Status = models.StatusCompleted
		eval.Result = result
		eval.ErrorMessage = ""
	})
}

func (r *evaluationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	return r.update(id, func(eval *models.Evaluation) {
		eval.Status = models.StatusFailed
		eval.ErrorMessage = errorMsg
	})
}

func (r *evaluationRepository) FindPendingJobs(limit int) ([]models.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var evals []models.Evaluation
	for _, eval := range r.evals {
		if eval.Status == models.StatusQueued {
			evals = append(evals, *eval)
		}
	}

	sort.Slice(evals, func(i, j int) bool {
		return evals[i].CreatedAt.Before(evals[j].CreatedAt)
	})
	if limit > 0 && len(evals) > limit {
		evals = evals[:limit]
	}
	return evals, nil
}

func (r *evaluationRepository) update(id uuid.UUID, apply func(*models.Evaluation)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	eval, ok := r.evals[id]
	if !ok {
		return fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
	}
	apply(eval)
	eval.UpdatedAt = r.now()
	return nil
}
