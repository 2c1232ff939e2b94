package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/config"
	"alfredoptarigan/cv-matcher/internal/handlers"
	"alfredoptarigan/cv-matcher/internal/logger"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

func main() {
	cfg, envLoaded := config.Load()

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	zl.Info("config loaded", zap.Bool("dotenv", envLoaded), zap.String("env", cfg.Server.Env))

	docRepo := repositories.NewDocumentRepository()
	evalRepo := repositories.NewEvaluationRepository()
	candidateRepo := repositories.NewCandidateRepository()

	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.AllowedExtensions)
	if err := storageService.EnsureUploadDir(); err != nil {
		zl.Fatal("failed to create upload directory", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The semantic capability is resolved once; requests never retry it.
	semantic := services.LoadSemanticProvider(ctx, cfg.Embedding, zl)

	engine := analysis.NewEngine(
		analysis.WithSemantic(semantic),
		analysis.WithLogger(zl.Named("engine")),
	)

	matchService := services.NewMatchService(engine, services.NewDocumentReader(zl), candidateRepo, zl.Named("match"))
	evaluatorService := services.NewEvaluatorService(evalRepo, docRepo, matchService, zl.Named("evaluator"))

	worker := services.NewWorker(
		evalRepo,
		evaluatorService,
		cfg.Worker.Concurrency,
		cfg.Worker.QueueSize,
		cfg.Worker.PollInterval,
		zl.Named("worker"),
	)
	worker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "CV Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	maxFileSize := cfg.Storage.MaxFileSize
	handlers.RegisterRoutes(app, handlers.Handlers{
		Upload:            handlers.NewUploadHandler(docRepo, storageService, maxFileSize, zl.Named("upload")),
		Evaluate:          handlers.NewEvaluationHandler(evalRepo, docRepo, worker),
		Result:            handlers.NewResultHandler(evalRepo),
		Match:             handlers.NewMatchHandler(storageService, matchService, maxFileSize, zl.Named("match")),
		Candidates:        handlers.NewCandidateHandler(candidateRepo, storageService),
		Classify:          handlers.NewClassifyHandler(storageService, matchService, maxFileSize),
		SemanticAvailable: engine.SemanticAvailable,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("shutting down server")
		cancel()
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			zl.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("server starting", zap.String("addr", addr), zap.Bool("semantic", engine.SemanticAvailable()))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
