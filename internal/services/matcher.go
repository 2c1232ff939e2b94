package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
)

const (
	RoleCV = "CV"
	RoleJD = "Job Description"
)

// ValidationError reports a document that failed its classifier check.
type ValidationError struct {
	Role   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Role, e.Reason)
}

// CVInput is one stored résumé file.
type CVInput struct {
	Path         string
	OriginalName string
	StoredName   string
}

type MatchService interface {
	// ProcessMatch scores one CV file against a job description text and
	// records it in the candidate log.
	ProcessMatch(ctx context.Context, cv CVInput, jdText string) (*models.CandidateResult, error)
	// ProcessBatch scores every CV against the same job description. The first
	// invalid document aborts the batch and nothing is logged. Results are
	// sorted by match percentage, highest first.
	ProcessBatch(ctx context.Context, cvs []CVInput, jdText string) ([]models.CandidateResult, error)
	// Score validates both texts and returns the match result.
	Score(ctx context.Context, cvText, jdText string) (*analysis.MatchResult, error)
	Classify(text string) models.ClassifyResponse
	ReadText(path string) string
}

type matchService struct {
	engine        *analysis.Engine
	reader        DocumentReader
	candidateRepo repositories.CandidateRepository
	logger        *zap.Logger
}

func NewMatchService(
	engine *analysis.Engine,
	reader DocumentReader,
	candidateRepo repositories.CandidateRepository,
	logger *zap.Logger,
) MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &matchService{
		engine:        engine,
		reader:        reader,
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

func (m *matchService) ProcessMatch(ctx context.Context, cv CVInput, jdText string) (*models.CandidateResult, error) {
	results, err := m.ProcessBatch(ctx, []CVInput{cv}, jdText)
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

func (m *matchService) ProcessBatch(ctx context.Context, cvs []CVInput, jdText string) ([]models.CandidateResult, error) {
	if len(cvs) == 0 {
		return nil, fmt.Errorf("no CV provided")
	}

	scored := make([]*analysis.MatchResult, 0, len(cvs))
	for i, cv := range cvs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match cancelled: %w", err)
		}

		cvText := m.reader.ReadText(cv.Path)
		if err := m.validate(cvText, jdText, i == 0); err != nil {
			m.logger.Info("document rejected", zap.String("file", cv.OriginalName), zap.Error(err))
			return nil, err
		}

		scored = append(scored, m.engine.Score(ctx, cvText, jdText))
	}

	results := make([]models.CandidateResult, 0, len(cvs))
	for i, cv := range cvs {
		candidate := &models.Candidate{
			Filename:         cv.OriginalName,
			InternalFilename: cv.StoredName,
			Score:            scored[i].MatchPercentage,
			Experience:       scored[i].ExperienceLevel.CV,
			FullResults:      scored[i],
		}
		if err := m.candidateRepo.Add(candidate); err != nil {
			return nil, fmt.Errorf("failed to log candidate: %w", err)
		}

		m.logger.Info("candidate scored",
			zap.String("file", cv.OriginalName),
			zap.Float64("match", scored[i].MatchPercentage),
		)

		results = append(results, models.CandidateResult{
			CandidateID:    candidate.ID.String(),
			CVFilename:     cv.OriginalName,
			CVInternalName: cv.StoredName,
			MatchResult:    scored[i],
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results, nil
}

func (m *matchService) Score(ctx context.Context, cvText, jdText string) (*analysis.MatchResult, error) {
	if err := m.validate(cvText, jdText, true); err != nil {
		return nil, err
	}
	return m.engine.Score(ctx, cvText, jdText), nil
}

// validate checks the CV before the job description, so a bad CV is reported
// first. The job description only needs checking once per batch.
func (m *matchService) validate(cvText, jdText string, checkJD bool) error {
	if res := m.engine.ClassifyCV(cvText); !res.IsValid {
		return &ValidationError{Role: RoleCV, Reason: res.Reason}
	}
	if !checkJD {
		return nil
	}
	if res := m.engine.ClassifyJD(jdText); !res.IsValid {
		return &ValidationError{Role: RoleJD, Reason: res.Reason}
	}
	return nil
}

func (m *matchService) Classify(text string) models.ClassifyResponse {
	return models.ClassifyResponse{
		DocumentType: m.engine.DetectDocumentType(text),
		CV:           m.engine.ClassifyCV(text),
		JD:           m.engine.ClassifyJD(text),
	}
}

func (m *matchService) ReadText(path string) string {
	return m.reader.ReadText(path)
}
