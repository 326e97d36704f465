package telemetry

import (
	"fmt"
	"log/slog"
)

// SlogAPI writes reports to the default slog logger. params are logged
// positionally as params.0, params.1 and so on.
type SlogAPI struct{}

func appendParams(attrs []any, params []any) []any {
	for i, p := range params {
		attrs = append(attrs, fmt.Sprintf("params.%d", i), p)
	}
	return attrs
}

func (SlogAPI) ReportBroken(id string, params ...any) {
	slog.Error("result processing failed", appendParams([]any{"id", id}, params)...)
}

func (SlogAPI) ReportWarning(id string, params ...any) {
	slog.Warn("result processing warning", appendParams([]any{"id", id}, params)...)
}

func (SlogAPI) ReportDebug(message string, params ...any) {
	slog.Debug(message, appendParams(nil, params)...)
}

func (SlogAPI) ReportCount(id string, count int64) {
	slog.Info("run total", "id", id, "n", count)
}
