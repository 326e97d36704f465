package commands

import (
	"fmt"
	"log/slog"
	"time"

	"beup-results/internal/batch"
	"beup-results/internal/chrono"
	"beup-results/internal/results"
	"beup-results/internal/telemetry"
	"beup-results/lib/restyutil"
	libtelemetry "beup-results/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	scrapePrefix   *string
	scrapeFrom     *int
	scrapeTo       *int
	scrapeDelay    *time.Duration
	scrapeKeep     *bool
	scrapeDumpHttp *string
	scrapeBypass   *bool
)

func init() {
	scrapePrefix = scrapeCmd.Flags().String("prefix", "", "The registration number prefix, overrides the config.")
	scrapeFrom = scrapeCmd.Flags().Int("from", 0, "The first registration number suffix, overrides the config.")
	scrapeTo = scrapeCmd.Flags().Int("to", 0, "The last registration number suffix, overrides the config.")
	scrapeDelay = scrapeCmd.Flags().Duration("delay", 0, "The pause between requests, overrides the config.")
	scrapeKeep = scrapeCmd.Flags().Bool("keep", false, "Keep existing rows instead of recreating the results table.")
	scrapeDumpHttp = scrapeCmd.Flags().String("dump-http", "", "Write every http exchange into this directory.")
	scrapeBypass = scrapeCmd.Flags().Bool("bypass-cloudflare", false, "Route requests through the cloudflare bot check bypass.")
	rootCmd.AddCommand(scrapeCmd)
}

func applyScrapeFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Range.Prefix = *scrapePrefix
	}
	if flags.Changed("from") {
		cfg.Range.From = *scrapeFrom
	}
	if flags.Changed("to") {
		cfg.Range.To = *scrapeTo
	}
	if flags.Changed("delay") {
		cfg.DelayMillis = int(*scrapeDelay / time.Millisecond)
	}
	if flags.Changed("bypass-cloudflare") {
		cfg.BypassCloudflare = *scrapeBypass
	}
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--from <n>] [--to <n>] [--keep] [--db <path/to/results.db>]",
	Short: "Fetches every result page in the configured range and writes them to the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		applyScrapeFlags(cmd, &cfg)

		regNos, err := cfg.Range.RegistrationNumbers()
		if err != nil {
			return err
		}

		var dump restyutil.InstrumentOutput
		if *scrapeDumpHttp != "" {
			out, err := restyutil.NewFilesystemOutput(*scrapeDumpHttp)
			if err != nil {
				return fmt.Errorf("failed to create http dump directory: %w", err)
			}
			dump = out
		}

		tel := telemetry.NewScopedAPI("beup", telemetry.SlogAPI{})
		extractor, err := results.NewExtractor(results.ExtractorOptions{
			UrlTemplate:      cfg.UrlTemplate,
			UserAgent:        cfg.UserAgent,
			Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
			Anchors:          cfg.Anchors,
			BypassCloudflare: cfg.BypassCloudflare,
			Dump:             dump,
		}, tel)
		if err != nil {
			return err
		}

		s, db, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if *scrapeKeep {
			err = s.Init(ctx)
		} else {
			err = s.Reset(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to prepare results table: %w", err)
		}

		libtelemetry.InstrumentPerfStats(ctx, 30*time.Second)

		slog.Info(
			"scraping results",
			"first", regNos[0],
			"last", regNos[len(regNos)-1],
			"count", len(regNos),
		)
		runner := batch.NewRunner(
			extractor,
			s,
			chrono.NewStandardTime(),
			tel,
			time.Duration(cfg.DelayMillis)*time.Millisecond,
		)
		runner.Run(ctx, regNos)

		fmt.Fprintln(cmd.OutOrStdout(), "All records processed and saved to the database.")
		return nil
	},
}
