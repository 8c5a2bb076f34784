package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/eddiechapman/make-blank-docs/internal/logfields"
	"github.com/eddiechapman/make-blank-docs/internal/preflight"
	"github.com/eddiechapman/make-blank-docs/internal/roster"
)

// CheckCmd implements the 'check' command: everything generate verifies
// before the first row, and nothing more.
type CheckCmd struct {
	RosterFlags `embed:""`
}

func (cmd *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadProfile(g)
	if err != nil {
		return err
	}
	policy, err := cmd.resolvePolicy(cfg)
	if err != nil {
		return err
	}

	if err := preflight.ValidatePaths(cmd.Input, cmd.Output); err != nil {
		return err
	}

	r, err := roster.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if err := r.RequireColumns(policy.Columns()...); err != nil {
		return err
	}

	g.Logger.Info("Roster ready",
		logfields.Input(cmd.Input),
		logfields.Output(cmd.Output),
		logfields.Policy(string(policy.Name)),
		slog.Any("columns", policy.Columns()))
	_, _ = fmt.Fprintf(g.Stdout, "%s: columns %s present (policy %s)\n",
		cmd.Input, strings.Join(policy.Columns(), ", "), policy.Name)
	return nil
}
