package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/services"
)

type ClassifyHandler struct {
	storageService services.StorageService
	matchService   services.MatchService
	maxFileSize    int64
}

func NewClassifyHandler(
	storageService services.StorageService,
	matchService services.MatchService,
	maxFileSize int64,
) *ClassifyHandler {
	return &ClassifyHandler{
		storageService: storageService,
		matchService:   matchService,
		maxFileSize:    maxFileSize,
	}
}

// HandleClassify handles POST /classify. It accepts a JSON body with "text"
// or a multipart "file" and reports how the document scores in both roles.
func (h *ClassifyHandler) HandleClassify(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.classifyFile(c)
	}

	var req models.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	return c.JSON(h.matchService.Classify(req.Text))
}

func (h *ClassifyHandler) classifyFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return uploadError(c, "Document", h.maxFileSize, errFileTooLarge)
	}

	stored, path, err := h.storageService.SaveFile(file, "classify")
	if err != nil {
		return uploadError(c, "Document", h.maxFileSize, err)
	}
	defer h.storageService.DeleteFile(stored)

	return c.JSON(h.matchService.Classify(h.matchService.ReadText(path)))
}
