package commands

import (
	"errors"
	"fmt"

	"beup-results/internal/report"
	"beup-results/internal/store"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <registration_no>",
	Short: "Prints every stored field of a single result.",
	Args:  cobra.ExactArgs(1),
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

		result, err := s.Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no result stored for %s", args[0])
		}
		if err != nil {
			return err
		}
		report.RenderResult(cmd.OutOrStdout(), result)
		return nil
	},
}
