package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/eddiechapman/make-blank-docs/internal/blankdoc"
	"github.com/eddiechapman/make-blank-docs/internal/logfields"
	"github.com/eddiechapman/make-blank-docs/internal/metrics"
	"github.com/eddiechapman/make-blank-docs/internal/observability"
	"github.com/eddiechapman/make-blank-docs/internal/preflight"
	"github.com/eddiechapman/make-blank-docs/internal/roster"
)

// RunOptions describes one batch run.
type RunOptions struct {
	Input    string
	Output   string
	Policy   Policy
	Writer   blankdoc.Writer
	Recorder metrics.Recorder
	Logger   *slog.Logger
	DryRun   bool
}

// Summary reports what a run did. On failure it covers the work done before
// the error; those documents stay on disk.
type Summary struct {
	Output     string
	Rows       int
	Documents  []Document
	ByCategory map[string]int
	DryRun     bool
	Duration   time.Duration
}

// Run validates the paths, streams the roster and writes the blank documents.
// Every error is fatal and returned as is; nothing already written is removed.
func Run(ctx context.Context, opts RunOptions) (summary Summary, err error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = observability.NewDiscardLogger()
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	summary = Summary{Output: opts.Output, DryRun: opts.DryRun, ByCategory: map[string]int{}}
	defer func() {
		summary.Duration = time.Since(start)
		recorder.ObserveRunDuration(summary.Duration)
		if err != nil {
			recorder.IncRunOutcome(metrics.OutcomeFailed)
			return
		}
		recorder.IncRunOutcome(metrics.OutcomeSuccess)
	}()

	if err := preflight.ValidatePaths(opts.Input, opts.Output); err != nil {
		return summary, err
	}
	ctx = observability.WithStage(ctx, "generate")

	logger.LogAttrs(ctx, slog.LevelInfo, "Beginning program",
		logfields.Input(opts.Input),
		logfields.Output(opts.Output),
		logfields.Policy(string(opts.Policy.Name)),
		logfields.DryRun(opts.DryRun))

	r, err := roster.Open(opts.Input)
	if err != nil {
		return summary, err
	}
	defer func() { _ = r.Close() }()
	logger.LogAttrs(ctx, slog.LevelDebug, "File opened", logfields.Path(opts.Input))

	if err := r.RequireColumns(opts.Policy.Columns()...); err != nil {
		return summary, err
	}

	gen := New(Options{
		Policy:    opts.Policy,
		OutputDir: opts.Output,
		Writer:    opts.Writer,
		Recorder:  recorder,
		Logger:    logger,
		DryRun:    opts.DryRun,
	})

	for rec, err := range r.Records() {
		if err != nil {
			return summary, err
		}
		summary.Rows++
		recorder.IncRowsRead()
		logger.LogAttrs(ctx, slog.LevelDebug, "Row read", logfields.Line(rec.Line), slog.Any("fields", rec.Fields))

		docs, err := gen.Generate(ctx, rec)
		summary.add(docs)
		if err != nil {
			return summary, err
		}
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Program complete",
		logfields.Output(opts.Output),
		logfields.Rows(summary.Rows),
		logfields.Documents(len(summary.Documents)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return summary, nil
}

func (s *Summary) add(docs []Document) {
	for _, d := range docs {
		s.Documents = append(s.Documents, d)
		s.ByCategory[d.Category.Name]++
	}
}
