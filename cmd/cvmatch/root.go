package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/config"
	"alfredoptarigan/cv-matcher/internal/logger"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

const app = "cvmatch"

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "cvmatch scores résumés against job descriptions from local files",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("gemini-api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Bool("no-semantic", false, "skip the embedding model even when an API key is set")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("no-semantic", rootCmd.PersistentFlags().Lookup("no-semantic"))
}

// toolkit is what every subcommand needs to read and score documents.
type toolkit struct {
	logger *zap.Logger
	engine *analysis.Engine
	match  services.MatchService
}

func newToolkit(ctx context.Context, withSemantic bool) (*toolkit, error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	cfg, _ := config.Load()
	if key := viper.GetString("gemini-api-key"); key != "" {
		cfg.Embedding.APIKey = key
	}

	var semantic analysis.SemanticProvider = analysis.Unavailable{}
	if withSemantic && !viper.GetBool("no-semantic") {
		semantic = services.LoadSemanticProvider(ctx, cfg.Embedding, zl)
	}

	engine := analysis.NewEngine(
		analysis.WithSemantic(semantic),
		analysis.WithLogger(zl.Named("engine")),
	)

	return &toolkit{
		logger: zl,
		engine: engine,
		match:  services.NewMatchService(engine, services.NewDocumentReader(zl), repositories.NewCandidateRepository(), zl),
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
