package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/services"
)

type MatchHandler struct {
	storageService services.StorageService
	matchService   services.MatchService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewMatchHandler(
	storageService services.StorageService,
	matchService services.MatchService,
	maxFileSize int64,
	logger *zap.Logger,
) *MatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchHandler{
		storageService: storageService,
		matchService:   matchService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleMatch handles POST /match. The form carries one or more "cv" files
// and a job description as either "jd_text" or a "jd" file. Stored CVs stay
// available for download; the JD file is removed once scored.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jdText := ""
	if values := form.Value["jd_text"]; len(values) > 0 {
		jdText = strings.TrimSpace(values[0])
	}

	var jdFile *multipart.FileHeader
	if files := form.File["jd"]; len(files) > 0 && files[0].Filename != "" {
		jdFile = files[0]
	}

	var cvFiles []*multipart.FileHeader
	for _, f := range form.File["cv"] {
		if f.Filename != "" {
			cvFiles = append(cvFiles, f)
		}
	}

	if len(cvFiles) == 0 || (jdText == "" && jdFile == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide CV(s) and Job Description",
		})
	}

	for _, f := range cvFiles {
		if !h.storageService.AllowedFile(f.Filename) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid CV file type: %s. Allowed: .txt, .pdf, .docx", f.Filename),
			})
		}
	}
	if jdText == "" && !h.storageService.AllowedFile(jdFile.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JD file type. Allowed: .txt, .pdf, .docx",
		})
	}

	if jdText == "" {
		jdText, err = h.readJobDescription(jdFile)
		if err != nil {
			return h.saveError(c, "Job description", err)
		}
	}

	inputs := make([]services.CVInput, 0, len(cvFiles))
	for _, f := range cvFiles {
		if h.maxFileSize > 0 && f.Size > h.maxFileSize {
			return h.saveError(c, "CV", errFileTooLarge)
		}
		stored, path, err := h.storageService.SaveFile(f, string(models.DocumentTypeCV))
		if err != nil {
			return h.saveError(c, "CV", err)
		}
		inputs = append(inputs, services.CVInput{
			Path:         path,
			OriginalName: f.Filename,
			StoredName:   stored,
		})
	}

	results, err := h.matchService.ProcessBatch(c.UserContext(), inputs, jdText)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Error(),
			})
		}
		h.logger.Error("match failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Processing failed: %v", err),
		})
	}

	return c.JSON(models.MatchResponse{
		TotalCVs: len(results),
		Results:  results,
	})
}

func (h *MatchHandler) readJobDescription(file *multipart.FileHeader) (string, error) {
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return "", errFileTooLarge
	}

	stored, path, err := h.storageService.SaveFile(file, string(models.DocumentTypeJD))
	if err != nil {
		return "", err
	}
	defer func() {
		if err := h.storageService.DeleteFile(stored); err != nil {
			h.logger.Warn("failed to remove job description upload", zap.String("file", stored), zap.Error(err))
		}
	}()

	return h.matchService.ReadText(path), nil
}

func (h *MatchHandler) saveError(c *fiber.Ctx, label string, err error) error {
	return uploadError(c, label, h.maxFileSize, err)
}
