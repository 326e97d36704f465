package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"beup-results/cmd/beup-cli/commands"
	"beup-results/lib/telemetry"
	"beup-results/lib/util/serviceutil"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	tel, err := telemetry.SetupFromEnv(ctx, "beup-cli")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}()

	return commands.ExecuteContext(ctx)
}
