package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/eddiechapman/make-blank-docs/internal/generator"
	"github.com/eddiechapman/make-blank-docs/internal/logfields"
	"github.com/eddiechapman/make-blank-docs/internal/metrics"
)

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct {
	RosterFlags `embed:""`

	MetricsFile string `name:"metrics-file" env:"BLANKDOCS_METRICS_FILE" help:"Write Prometheus metrics to this textfile after the run"`
	DryRun      bool   `name:"dry-run" help:"Log the documents that would be created without writing them"`
}

func (cmd *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadProfile(g)
	if err != nil {
		return err
	}
	policy, err := cmd.resolvePolicy(cfg)
	if err != nil {
		return err
	}

	ctx := g.Context()
	recorder := metrics.NewPrometheusRecorder(nil)

	summary, runErr := generator.Run(ctx, generator.RunOptions{
		Input:    cmd.Input,
		Output:   cmd.Output,
		Policy:   policy,
		Recorder: recorder,
		Logger:   g.Logger,
		DryRun:   cmd.DryRun,
	})

	metricsFile := cmd.MetricsFile
	if metricsFile == "" {
		metricsFile = cfg.Metrics.Textfile
	}
	if metricsFile != "" {
		if err := recorder.WriteTextfile(metricsFile); err != nil {
			g.Logger.LogAttrs(ctx, slog.LevelWarn, "Failed to write metrics textfile",
				logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	printSummary(g, policy, summary)
	return nil
}

// printSummary writes one line per run: documents per category in policy order.
func printSummary(g *Global, policy generator.Policy, s generator.Summary) {
	counts := make([]string, 0, len(policy.Categories))
	for _, c := range policy.Categories {
		counts = append(counts, fmt.Sprintf("%s=%d", c.Name, s.ByCategory[c.Name]))
	}
	verb := "created"
	if s.DryRun {
		verb = "would create"
	}
	_, _ = fmt.Fprintf(g.Stdout, "%d rows, %s %d documents in %s (%s)\n",
		s.Rows, verb, len(s.Documents), s.Output, strings.Join(counts, ", "))
}
