package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Upload     *UploadHandler
	Evaluate   *EvaluationHandler
	Result     *ResultHandler
	Match      *MatchHandler
	Candidates *CandidateHandler
	Classify   *ClassifyHandler
	// SemanticAvailable reports the embedding capability on /health.
	SemanticAvailable func() bool
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		semantic := false
		if h.SemanticAvailable != nil {
			semantic = h.SemanticAvailable()
		}
		return c.JSON(fiber.Map{
			"status":             "healthy",
			"semantic_available": semantic,
			"time":               time.Now(),
		})
	})

	api.Post("/upload", h.Upload.HandleUpload)
	api.Post("/evaluate", h.Evaluate.HandleEvaluate)
	api.Get("/result/:id", h.Result.HandleGetResult)

	api.Post("/match", h.Match.HandleMatch)
	api.Post("/classify", h.Classify.HandleClassify)

	api.Get("/candidates", h.Candidates.HandleList)
	api.Get("/candidates/:id", h.Candidates.HandleGet)
	api.Delete("/candidates/:id", h.Candidates.HandleDelete)
	api.Get("/download/:filename", h.Candidates.HandleDownload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/match",
				"POST /api/v1/classify",
				"POST /api/v1/upload",
				"POST /api/v1/evaluate",
				"GET /api/v1/result/:id",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"DELETE /api/v1/candidates/:id",
				"GET /api/v1/download/:filename",
			},
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
