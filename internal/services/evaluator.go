package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/repositories"
)

// EvaluatorService runs one queued evaluation to completion.
type EvaluatorService interface {
	EvaluateCandidate(ctx context.Context, evalID uuid.UUID) error
}

type evaluatorService struct {
	evalRepo     repositories.EvaluationRepository
	docRepo      repositories.DocumentRepository
	matchService MatchService
	logger       *zap.Logger
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	docRepo repositories.DocumentRepository,
	matchService MatchService,
	logger *zap.Logger,
) EvaluatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &evaluatorService{
		evalRepo:     evalRepo,
		docRepo:      docRepo,
		matchService: matchService,
		logger:       logger,
	}
}

func (e *evaluatorService) EvaluateCandidate(ctx context.Context, evalID uuid.UUID) error {
	claimed, err := e.evalRepo.Claim(evalID)
	if err != nil {
		return fmt.Errorf("failed to claim evaluation: %w", err)
	}
	if !claimed {
		e.logger.Debug("evaluation already taken", zap.Stringer("id", evalID))
		return nil
	}

	log := e.logger.With(zap.Stringer("id", evalID))
	log.Info("starting evaluation")

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.fail(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	cvDoc, err := e.docRepo.FindByID(evaluation.CVDocumentID)
	if err != nil {
		e.fail(evalID, fmt.Sprintf("CV document not found: %v", err))
		return fmt.Errorf("failed to get CV document: %w", err)
	}

	jdText := evaluation.JDText
	if jdText == "" && evaluation.JDDocumentID != nil {
		jdDoc, err := e.docRepo.FindByID(*evaluation.JDDocumentID)
		if err != nil {
			e.fail(evalID, fmt.Sprintf("Job description document not found: %v", err))
			return fmt.Errorf("failed to get job description document: %w", err)
		}
		jdText = e.matchService.ReadText(jdDoc.FilePath)
	}

	result, err := e.matchService.ProcessMatch(ctx, CVInput{
		Path:         cvDoc.FilePath,
		OriginalName: cvDoc.OriginalFileName,
		StoredName:   cvDoc.Filename,
	}, jdText)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			e.fail(evalID, verr.Error())
			log.Info("evaluation rejected", zap.String("reason", verr.Error()))
			return nil
		}
		e.fail(evalID, fmt.Sprintf("Failed to match documents: %v", err))
		return fmt.Errorf("failed to match documents: %w", err)
	}

	if err := e.evalRepo.UpdateResult(evalID, result.MatchResult); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Info("evaluation completed", zap.Float64("match", result.MatchPercentage))
	return nil
}

func (e *evaluatorService) fail(evalID uuid.UUID, msg string) {
	if err := e.evalRepo.UpdateError(evalID, msg); err != nil {
		e.logger.Error("failed to record evaluation error", zap.Stringer("id", evalID), zap.Error(err))
	}
}
