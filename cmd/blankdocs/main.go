package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/eddiechapman/make-blank-docs/cmd/blankdocs/commands"
	"github.com/eddiechapman/make-blank-docs/internal/config"
	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer, options ...kong.Option) int {
	g := commands.NewGlobal(stdout, stderr)
	defer func() { _ = g.Close() }()

	// .env files must be applied before kong resolves env-tagged flags.
	envFiles, err := config.LoadEnv()
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, g.Logger).WithOutput(stderr).
			Handle(g.Context(), ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load .env file").Fatal().Build())
	}
	g.EnvFiles = envFiles

	cli := &commands.CLI{}
	parser, err := commands.NewParser(cli, g, options...)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return ferrors.ExitValidation
	}

	if err := kctx.Run(); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, g.Logger).WithOutput(stderr).Handle(g.Context(), err)
	}
	return 0
}
