package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/logger"
	"alfredoptarigan/cv-matcher/internal/services"
)

var scoreCmd = &cobra.Command{
	Use:   "score --jd FILE CV_FILE...",
	Short: "Score one or more résumés against a job description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("jd", "", "job description file (.txt, .pdf, .docx)")
	scoreCmd.Flags().String("jd-text", "", "job description given inline")
	scoreCmd.Flags().Bool("skip-validation", false, "score even when a document does not look like a CV or a job description")
}

type scoredFile struct {
	File string `json:"file"`
	*analysis.MatchResult
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jdFile, _ := cmd.Flags().GetString("jd")
	jdText, _ := cmd.Flags().GetString("jd-text")
	skipValidation, _ := cmd.Flags().GetBool("skip-validation")

	if (jdFile == "") == (jdText == "") {
		return errors.New("exactly one of --jd and --jd-text is required")
	}

	tk, err := newToolkit(ctx, true)
	if err != nil {
		return err
	}
	defer tk.logger.Sync()

	if jdFile != "" {
		jdText = tk.match.ReadText(jdFile)
	}
	tk.logger.Debug("job description loaded", zap.String("preview", logger.Truncate(jdText, 80)))

	results := make([]scoredFile, 0, len(args))
	for _, path := range args {
		cvText := tk.match.ReadText(path)

		var res *analysis.MatchResult
		if skipValidation {
			res = tk.engine.Score(ctx, cvText, jdText)
		} else {
			res, err = tk.match.Score(ctx, cvText, jdText)
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("%s: %w", path, verr)
			}
			if err != nil {
				return err
			}
		}
		results = append(results, scoredFile{File: path, MatchResult: res})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})

	if len(results) == 1 {
		return printJSON(cmd.OutOrStdout(), results[0])
	}
	return printJSON(cmd.OutOrStdout(), results)
}
