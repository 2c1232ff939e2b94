package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(evalID uuid.UUID)
}

type worker struct {
	evalRepo         repositories.EvaluationRepository
	evaluatorService EvaluatorService
	jobQueue         chan uuid.UUID
	concurrency      int
	pollInterval     time.Duration
	logger           *zap.Logger
	wg               sync.WaitGroup
	stopChan         chan struct{}
	stopOnce         sync.Once
}

func NewWorker(
	evalRepo repositories.EvaluationRepository,
	evaluatorService EvaluatorService,
	concurrency int,
	queueSize int,
	pollInterval time.Duration,
	logger *zap.Logger,
) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &worker{
		evalRepo:         evalRepo,
		evaluatorService: evaluatorService,
		jobQueue:         make(chan uuid.UUID, queueSize),
		concurrency:      concurrency,
		pollInterval:     pollInterval,
		logger:           logger,
		stopChan:         make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("starting worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("stopping worker")
		close(w.stopChan)
	})
	w.wg.Wait()
	w.logger.Info("worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(evalID uuid.UUID) {
	select {
	case w.jobQueue <- evalID:
		w.logger.Debug("job enqueued", zap.Stringer("id", evalID))
	case <-w.stopChan:
		w.logger.Warn("worker stopped, job left for the poller", zap.Stringer("id", evalID))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.logger.With(zap.Int("worker", workerID))

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case evalID := <-w.jobQueue:
			if err := w.runJob(ctx, evalID); err != nil {
				log.Error("job failed", zap.Stringer("id", evalID), zap.Error(err))
			}
		}
	}
}

// runJob keeps a panicking evaluation from taking the worker down with it.
// The evaluation is marked failed so the poller does not pick it up again.
func (w *worker) runJob(ctx context.Context, evalID uuid.UUID) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("evaluation panicked: %v", rec)
			if uerr := w.evalRepo.UpdateError(evalID, "internal error while evaluating"); uerr != nil {
				w.logger.Error("failed to record evaluation error", zap.Stringer("id", evalID), zap.Error(uerr))
			}
		}
	}()
	return w.evaluatorService.EvaluateCandidate(ctx, evalID)
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			pendingJobs, err := w.evalRepo.FindPendingJobs(10)
			if err != nil {
				w.logger.Warn("failed to fetch pending jobs", zap.Error(err))
				continue
			}

			if len(pendingJobs) > 0 {
				w.logger.Debug("found pending jobs", zap.Int("count", len(pendingJobs)))
			}

			// Claim in the evaluator makes re-enqueueing a job harmless.
			for _, job := range pendingJobs {
				select {
				case w.jobQueue <- job.ID:
				default:
				}
			}
		}
	}
}
