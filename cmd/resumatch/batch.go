package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jonathan/resumatch/internal/analysis"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/jonathan/resumatch/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank several résumés against one job description",
	Long: `Analyze every --resume against the same job description and print them ranked by
match score. Résumés that cannot be analyzed are listed last with the reason.`,
	Example: `  resumatch batch --job job.txt --resume alice.txt --resume bob.txt
  resumatch batch --job-url https://jobs.lever.co/acme/123 --resume cvs/*.txt --format json`,
	RunE: runBatch,
}

var (
	batchJob         string
	batchJobURL      string
	batchResumes     []string
	batchTitle       string
	batchConcurrency int
	batchFormat      string
	batchUseBrowser  bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text or HTML file")
	batchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL of the job posting to fetch")
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resume", "r", nil, "Résumé file to analyze (repeatable)")
	batchCmd.Flags().StringVarP(&batchTitle, "title", "t", "", "Job title, boosted into the job description")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", analysis.DefaultBatchConcurrency, "Maximum analyses run at once")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "text", "Output format: text or json")
	batchCmd.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Render client-side job boards in headless Chrome")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = batchJob
	}
	if flags.Changed("job-url") {
		cfg.JobURL = batchJobURL
	}
	if flags.Changed("title") {
		cfg.JobTitle = batchTitle
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = batchUseBrowser
	}
	if err := checkInputs(&cfg, false); err != nil {
		return err
	}
	if len(batchResumes) == 0 {
		return fmt.Errorf("at least one --resume is required")
	}
	if batchFormat != "text" && batchFormat != "json" {
		return fmt.Errorf("unknown batch format %q (want text or json)", batchFormat)
	}

	ctx := cmd.Context()
	store, closeCache := openCache(ctx, &cfg)
	defer closeCache()

	var jdText string
	resumes := make([]types.NamedText, len(batchResumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(batchConcurrency, 1) + 1)
	g.Go(func() error {
		text, _, err := loadJob(gctx, &cfg, store, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		jdText = text
		return nil
	})
	for i, path := range batchResumes {
		g.Go(func() error {
			text, _, err := loadDocument(path, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to load résumé %s: %w", path, err)
			}
			resumes[i] = types.NamedText{Name: filepath.Base(path), Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	settings := cfg.Settings()
	req := &types.BatchRequest{
		JobTitle:       cfg.JobTitle,
		JobDescription: jdText,
		Resumes:        resumes,
		Settings:       &settings,
		TopK:           cfg.Analysis.TopK,
	}
	if err := settingsValidator.Struct(req); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	service := analysis.NewService(analysis.ServiceConfig{Cache: store, Logger: logger})
	resp, err := service.AnalyzeBatch(ctx, req, batchConcurrency)
	if err != nil {
		return err
	}
	rankBatch(resp.Results)
	logger.Debug("batch ranked", zap.String("id", resp.ID), zap.Int("resumes", len(resp.Results)))

	if batchFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintBatch(resp.Results)
	return nil
}

// rankBatch orders results by score descending, then name. Failed résumés go last.
func rankBatch(results []types.BatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Result == nil) != (b.Result == nil) {
			return a.Result != nil
		}
		if a.Result != nil && a.Result.Score != b.Result.Score {
			return a.Result.Score > b.Result.Score
		}
		return a.Name < b.Name
	})
}
