package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resumatch/internal/analysis"
	"github.com/jonathan/resumatch/internal/config"
	"github.com/jonathan/resumatch/internal/ingestion"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/jonathan/resumatch/internal/rendering"
	"github.com/jonathan/resumatch/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a résumé against a job description",
	Long: `Compare a résumé with a job description and print the match score, missing and critical
keywords, hard- and soft-skill coverage and the top TF-IDF terms.

The job description comes from a text or HTML file (--job) or a job posting URL (--job-url).
Either document may be read from stdin by passing "-" as its path.`,
	Example: `  resumatch analyze --job job.txt --resume resume.txt
  resumatch analyze --job-url https://boards.greenhouse.io/acme/jobs/123 --resume resume.txt --format json
  cat resume.txt | resumatch analyze --job job.txt --resume - --title "Data Engineer"`,
	RunE: runAnalyze,
}

var (
	analyzeJob         string
	analyzeJobURL      string
	analyzeResume      string
	analyzeTitle       string
	analyzeTitleWeight float64
	analyzeHardWeight  float64
	analyzeSoftWeight  float64
	analyzeNoStopwords bool
	analyzeTopK        int
	analyzeFormat      string
	analyzeOut         string
	analyzeUseBrowser  bool
)

var settingsValidator = validator.New()

func init() {
	defaults := types.DefaultSettings()

	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text or HTML file (\"-\" for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL of the job posting to fetch")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to résumé text file (\"-\" for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Job title, boosted into the job description")
	analyzeCmd.Flags().Float64Var(&analyzeTitleWeight, "title-weight", defaults.TitleWeight, "Title boost weight (1.0-2.0)")
	analyzeCmd.Flags().Float64Var(&analyzeHardWeight, "hard-weight", defaults.HardWeight, "Hard-skill boost weight (1.0-3.0)")
	analyzeCmd.Flags().Float64Var(&analyzeSoftWeight, "soft-weight", defaults.SoftWeight, "Soft-skill boost weight (1.0-2.0)")
	analyzeCmd.Flags().BoolVar(&analyzeNoStopwords, "no-stopwords", false, "Keep stopwords when tokenizing")
	analyzeCmd.Flags().IntVarP(&analyzeTopK, "top-k", "k", types.DefaultTopK, "Number of top terms to report")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", string(rendering.FormatText), "Output format: text, json or csv")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render client-side job boards in headless Chrome")

	rootCmd.AddCommand(analyzeCmd)
}

// applyAnalyzeFlags overrides configuration values with the flags the user set.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = analyzeJob
	}
	if flags.Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if flags.Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if flags.Changed("title") {
		cfg.JobTitle = analyzeTitle
	}
	if flags.Changed("title-weight") {
		cfg.Analysis.TitleWeight = analyzeTitleWeight
	}
	if flags.Changed("hard-weight") {
		cfg.Analysis.HardWeight = analyzeHardWeight
	}
	if flags.Changed("soft-weight") {
		cfg.Analysis.SoftWeight = analyzeSoftWeight
	}
	if flags.Changed("no-stopwords") {
		cfg.Analysis.UseStopwords = !analyzeNoStopwords
	}
	if flags.Changed("top-k") {
		cfg.Analysis.TopK = analyzeTopK
	}
	if flags.Changed("format") {
		cfg.Format = analyzeFormat
	}
	if flags.Changed("out") {
		cfg.Output = analyzeOut
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
}

// checkInputs validates the merged configuration and the analysis settings.
func checkInputs(cfg *config.Config, needResume bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if needResume && cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == config.StdinPath && cfg.Resume == config.StdinPath {
		return fmt.Errorf("only one of --job and --resume can read from stdin")
	}
	if err := settingsValidator.Struct(cfg.Settings()); err != nil {
		return fmt.Errorf("invalid analysis settings: %w", err)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig
	applyAnalyzeFlags(cmd, &cfg)
	if err := checkInputs(&cfg, true); err != nil {
		return err
	}
	format, err := rendering.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeCache := openCache(ctx, &cfg)
	defer closeCache()

	var (
		jdText, resumeText string
		jdMeta             *ingestion.Metadata
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, meta, err := loadJob(gctx, &cfg, store, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		jdText, jdMeta = text, meta
		return nil
	})
	g.Go(func() error {
		text, _, err := loadDocument(cfg.Resume, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load résumé: %w", err)
		}
		resumeText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug("inputs loaded",
		zap.String("job_source", jdMeta.Source),
		zap.String("platform", jdMeta.Platform),
		zap.Int("job_words", jdMeta.Words),
		zap.Int("resume_chars", len(resumeText)),
	)

	settings := cfg.Settings()
	service := analysis.NewService(analysis.ServiceConfig{Cache: store, Logger: logger})
	result, err := service.Analyze(ctx, &types.AnalyzeRequest{
		JobTitle:       cfg.JobTitle,
		JobDescription: jdText,
		Resume:         resumeText,
		Settings:       &settings,
		TopK:           cfg.Analysis.TopK,
	})
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), cfg.Output, format, result); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintSummary(result)
		printer.PrintSkillCoverage("HARD SKILLS", result.HardSkills)
		printer.PrintSkillCoverage("SOFT SKILLS", result.SoftSkills)
		printer.PrintTopTerms(result.TopTerms)
	}
	return nil
}

// writeReport renders result to path, or to stdout when path is empty.
func writeReport(stdout io.Writer, path string, format rendering.Format, result *types.AnalysisResult) error {
	if path == "" {
		return rendering.Render(stdout, format, result)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := rendering.Render(f, format, result); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(stdout, "Report written to %s\n", path)
	return nil
}
