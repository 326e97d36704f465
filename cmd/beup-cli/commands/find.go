package commands

import (
	"fmt"
	"strings"

	"beup-results/internal/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var findThreshold *float64

func init() {
	findThreshold = findCmd.Flags().Float64("threshold", report.DefaultMatchThreshold, "The minimum name similarity between 0 and 1.")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Searches stored results by approximate student name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		s, db, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		all, err := s.All(cmd.Context())
		if err != nil {
			return err
		}
		matches := report.MatchNames(all, strings.Join(args, " "), *findThreshold)
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matching students.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Registration No", "Name", "CGPA", "Similarity"})
		for _, m := range matches {
			grade := "-"
			if m.Result.Sgpa != nil {
				grade = fmt.Sprintf("%.2f", *m.Result.Sgpa)
			}
			t.AppendRow(table.Row{
				m.Result.RegistrationNo,
				*m.Result.StudentName,
				grade,
				fmt.Sprintf("%.2f", m.Similarity),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
