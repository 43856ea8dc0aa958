package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch and clean a job posting without analyzing it",
	Long: `Ingest a job posting from a text/HTML file or URL, clean the content, and print the
cleaned text. With --meta the ingestion metadata is written as JSON to stderr.`,
	RunE: runIngest,
}

var (
	ingestFile       string
	ingestURL        string
	ingestOut        string
	ingestMeta       bool
	ingestUseBrowser bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "text-file", "t", "", "Path to text or HTML file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Write the cleaned text to a file instead of stdout")
	ingestCmd.Flags().BoolVar(&ingestMeta, "meta", false, "Print ingestion metadata as JSON to stderr")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Render client-side job boards in headless Chrome")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	cfg := *appConfig
	cfg.Job, cfg.JobURL = ingestFile, ingestURL
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = ingestUseBrowser
	}

	ctx := cmd.Context()
	store, closeCache := openCache(ctx, &cfg)
	defer closeCache()

	text, meta, err := loadJob(ctx, &cfg, store, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	if ingestOut != "" {
		if err := os.WriteFile(ingestOut, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write cleaned text: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	if ingestMeta {
		data, err := meta.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), string(data))
	}
	return nil
}
