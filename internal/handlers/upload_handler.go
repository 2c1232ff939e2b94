package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
	logger *zap.Logger,
) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleUpload handles POST /upload. It stores a "cv" and/or a "jd" file
// and returns their document IDs for a later /evaluate call.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var responses []models.UploadResponse
	for _, field := range []struct {
		name  string
		label string
		kind  models.DocumentType
	}{
		{"cv", "CV", models.DocumentTypeCV},
		{"jd", "Job description", models.DocumentTypeJD},
	} {
		files := form.File[field.name]
		if len(files) == 0 {
			continue
		}

		doc, err := h.store(files[0], field.kind)
		if err != nil {
			return uploadError(c, field.label, h.maxFileSize, err)
		}

		responses = append(responses, models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
			FileType:     string(doc.FileType),
		})
	}

	if len(responses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'cv' and/or 'jd' as .txt, .pdf or .docx files.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}

var errFileTooLarge = errors.New("file too large")

func (h *UploadHandler) store(file *multipart.FileHeader, kind models.DocumentType) (*models.Document, error) {
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return nil, errFileTooLarge
	}

	filename, filePath, err := h.storageService.SaveFile(file, string(kind))
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         kind,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(doc); err != nil {
		if rmErr := h.storageService.DeleteFile(filename); rmErr != nil {
			h.logger.Warn("failed to clean up upload", zap.String("file", filename), zap.Error(rmErr))
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	h.logger.Info("document uploaded", zap.String("type", string(kind)), zap.String("file", filename))
	return doc, nil
}

func uploadError(c *fiber.Ctx, label string, maxFileSize int64, err error) error {
	switch {
	case errors.Is(err, errFileTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("%s file too large. Max size: %d bytes", label, maxFileSize),
		})
	case errors.Is(err, services.ErrInvalidExtension):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid %s file type. Allowed: .txt, .pdf, .docx", label),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save %s file: %v", label, err),
		})
	}
}
