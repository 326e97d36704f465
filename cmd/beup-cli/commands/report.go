package commands

import (
	"fmt"

	"beup-results/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [--db <path/to/results.db>]",
	Short: "Prints every stored student sorted by grade, highest first.",
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

		ranking, err := s.Ranking(cmd.Context())
		if err != nil {
			return err
		}
		report.Render(cmd.OutOrStdout(), cfg.ReportTitle, ranking)
		return nil
	},
}
