package commands

import (
	"fmt"

	"github.com/eddiechapman/make-blank-docs/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing profile"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = config.DefaultFile
	}

	_, _ = fmt.Fprintf(g.Stdout, "Writing run profile to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	g.Logger.Debug("Profile written", "path", path, "force", i.Force)
	return nil
}
