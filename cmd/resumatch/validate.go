package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resumatch/internal/schemas"
	"github.com/spf13/cobra"
)

// validateKinds maps --kind values to embedded schemas.
var validateKinds = map[string]schemas.Kind{
	"settings": schemas.KindAnalysisSettings,
	"request":  schemas.KindAnalyzeRequest,
	"batch":    schemas.KindBatchRequest,
	"result":   schemas.KindAnalysisResult,
	"draft":    schemas.KindDraft,
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a JSON document against an embedded schema",
	Example: `  resumatch validate --kind settings settings.json
  resumatch analyze --job job.txt --resume cv.txt --format json --out result.json && resumatch validate --kind result result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateKind string

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Document kind: "+strings.Join(kindNames(), ", "))
	_ = validateCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(validateCmd)
}

func kindNames() []string {
	names := make([]string, 0, len(validateKinds))
	for name := range validateKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, ok := validateKinds[validateKind]
	if !ok {
		return fmt.Errorf("unknown kind %q (want one of: %s)", validateKind, strings.Join(kindNames(), ", "))
	}

	if err := schemas.ValidateFile(kind, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid %s document\n", args[0], validateKind)
	return nil
}
