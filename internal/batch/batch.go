package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"beup-results/internal/chrono"
	"beup-results/internal/results"
	"beup-results/internal/telemetry"
)

const (
	report_batch_fetch     = "batch.fetch"
	report_batch_status    = "batch.status"
	report_batch_no_result = "batch.no-result"
	report_batch_parse     = "batch.parse"
	report_batch_persist   = "batch.persist"
	report_batch_processed = "batch.processed"
	report_batch_saved     = "batch.saved"
	report_batch_absent    = "batch.absent"
	report_batch_failed    = "batch.failed"
	report_batch_cancelled = "batch.cancelled"
)

const (
	defaultDelay            = time.Second
	defaultRegNoSuffixWidth = 3
)

// Range describes a contiguous block of registration numbers, each number is
// Prefix followed by the index zero padded to Width digits.
type Range struct {
	Prefix string `json:"prefix"`
	Width  int    `json:"width"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

func DefaultRange() Range {
	return Range{
		Prefix: "23106107",
		Width:  defaultRegNoSuffixWidth,
		From:   1,
		To:     55,
	}
}

// RegistrationNumbers lists every registration number of the range in order.
func (r Range) RegistrationNumbers() ([]string, error) {
	if r.From > r.To {
		return nil, fmt.Errorf("range start %d is after its end %d", r.From, r.To)
	}
	if r.From < 0 {
		return nil, fmt.Errorf("range start %d is negative", r.From)
	}
	width := r.Width
	if width <= 0 {
		width = defaultRegNoSuffixWidth
	}

	out := make([]string, 0, r.To-r.From+1)
	for i := r.From; i <= r.To; i++ {
		out = append(out, fmt.Sprintf("%s%0*d", r.Prefix, width, i))
	}
	return out, nil
}

// Extractor produces a record for a registration number.
type Extractor interface {
	Extract(ctx context.Context, regNo string) (results.Record, error)
}

// Persister stores a record.
type Persister interface {
	Persist(ctx context.Context, record results.Record) error
}

type Summary struct {
	Processed int
	Saved     int
	Absent    int
	Failed    int
	Cancelled bool
}

type Runner struct {
	extractor Extractor
	persister Persister
	clock     chrono.TimeAPI
	tel       telemetry.API
	delay     time.Duration
}

// NewRunner creates a runner that waits `delay` after every registration
// number, a zero delay defaults to one second.
func NewRunner(extractor Extractor, persister Persister, clock chrono.TimeAPI, tel telemetry.API, delay time.Duration) Runner {
	if delay <= 0 {
		delay = defaultDelay
	}
	return Runner{
		extractor: extractor,
		persister: persister,
		clock:     clock,
		tel:       tel,
		delay:     delay,
	}
}

// Run processes every registration number in sequence. a failure only ever
// skips its own registration number, the batch stops early only when ctx
// is cancelled.
func (r Runner) Run(ctx context.Context, regNos []string) Summary {
	var summary Summary
	start := r.clock.Now()

	for i, regNo := range regNos {
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}

		slog.InfoContext(ctx, "processing reg no", "reg_no", regNo, "n", i+1, "of", len(regNos))

		result := r.process(ctx, regNo)
		if result == outcomeCancelled {
			summary.Cancelled = true
			break
		}
		summary.Processed++
		switch result {
		case outcomeSaved:
			summary.Saved++
		case outcomeAbsent:
			summary.Absent++
		case outcomeFailed:
			summary.Failed++
		}

		if i == len(regNos)-1 {
			break
		}
		if err := r.clock.Sleep(ctx, r.delay); err != nil {
			summary.Cancelled = true
			break
		}
	}

	if summary.Cancelled {
		r.tel.ReportWarning(report_batch_cancelled, summary.Processed, len(regNos))
	}
	r.tel.ReportCount(report_batch_processed, int64(summary.Processed))
	r.tel.ReportCount(report_batch_saved, int64(summary.Saved))
	r.tel.ReportCount(report_batch_absent, int64(summary.Absent))
	r.tel.ReportCount(report_batch_failed, int64(summary.Failed))
	slog.InfoContext(
		ctx, "all records processed",
		"processed", summary.Processed,
		"saved", summary.Saved,
		"absent", summary.Absent,
		"failed", summary.Failed,
		"seconds", r.clock.Now().Sub(start).Seconds(),
	)
	return summary
}

type outcome int

const (
	outcomeSaved outcome = iota
	outcomeAbsent
	outcomeFailed
	// outcomeCancelled is returned when ctx ended while the registration
	// number was in flight, it is not counted.
	outcomeCancelled
)

func (r Runner) process(ctx context.Context, regNo string) outcome {
	record, err := r.extractor.Extract(ctx, regNo)

	var statusErr *results.StatusError
	switch {
	case err == nil:
	case ctx.Err() != nil:
		slog.InfoContext(ctx, "cancelled while fetching reg no", "reg_no", regNo)
		return outcomeCancelled
	case errors.Is(err, results.ErrNoResult):
		r.tel.ReportWarning(report_batch_no_result, regNo)
		return outcomeAbsent
	case errors.As(err, &statusErr):
		r.tel.ReportWarning(report_batch_status, regNo, statusErr.Code)
		return outcomeFailed
	case errors.Is(err, results.ErrFetch):
		r.tel.ReportBroken(report_batch_fetch, regNo, err)
		return outcomeFailed
	default:
		r.tel.ReportBroken(report_batch_parse, regNo, err)
		return outcomeFailed
	}

	err = r.persister.Persist(ctx, record)
	if err != nil && ctx.Err() != nil {
		slog.InfoContext(ctx, "cancelled while saving reg no", "reg_no", regNo)
		return outcomeCancelled
	}
	if err != nil {
		r.tel.ReportBroken(report_batch_persist, regNo, err)
		return outcomeFailed
	}
	slog.InfoContext(ctx, "saved data for reg no", "reg_no", regNo)
	return outcomeSaved
}
