package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resumatch/internal/skills"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the hard- and soft-skill catalogs",
	RunE:  runSkills,
}

var skillsJSON bool

func init() {
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Print the catalogs as JSON")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	hard, soft := skills.HardSkills(), skills.SoftSkills()
	out := cmd.OutOrStdout()

	if skillsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{
			"hard_skills": hard,
			"soft_skills": soft,
		})
	}

	printCatalog(out, "Hard skills", hard)
	fmt.Fprintln(out)
	printCatalog(out, "Soft skills", soft)
	return nil
}

func printCatalog(out io.Writer, heading string, entries []string) {
	fmt.Fprintf(out, "%s (%d):\n", heading, len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s\n", e)
	}
}
