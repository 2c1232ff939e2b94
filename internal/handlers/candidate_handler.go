package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

// CandidateHandler serves the session log of scored CVs and their files.
type CandidateHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
	}
}

// HandleList handles GET /candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates := h.candidateRepo.List()

	// Listing omits the full results; fetch one candidate to see them.
	for i := range candidates {
		candidates[i].FullResults = nil
	}

	return c.JSON(fiber.Map{
		"total":      len(candidates),
		"candidates": candidates,
	})
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(candidate)
}

// HandleDelete handles DELETE /candidates/:id. The stored CV file is kept.
func (h *CandidateHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	if err := h.candidateRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDownload handles GET /download/:filename
func (h *CandidateHandler) HandleDownload(c *fiber.Ctx) error {
	path, err := h.storageService.ResolveStored(c.Params("filename"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "File not found",
		})
	}

	return c.Download(path)
}
