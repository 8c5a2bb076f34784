package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/eddiechapman/make-blank-docs/internal/config"
	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
	"github.com/eddiechapman/make-blank-docs/internal/generator"
	"github.com/eddiechapman/make-blank-docs/internal/observability"
	"github.com/eddiechapman/make-blank-docs/internal/version"
)

// Global is shared by every command: the process writers and the logger
// built for the current run.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
	// EnvFiles lists the .env files applied before parsing.
	EnvFiles []string

	ctx     context.Context
	closers []func() error
}

// NewGlobal returns a Global whose logger discards everything until flags are applied.
func NewGlobal(stdout, stderr io.Writer) *Global {
	return &Global{
		Logger: observability.NewDiscardLogger(),
		Stdout: stdout,
		Stderr: stderr,
		ctx:    context.Background(),
	}
}

// Context carries the run id once flags are applied; every record of a run,
// including the final error, is logged with it.
func (g *Global) Context() context.Context {
	return g.ctx
}

// Close releases the log file, if one was opened.
func (g *Global) Close() error {
	var first error
	for _, c := range g.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	g.closers = nil
	return first
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Run profile (defaults to ./blankdocs.yaml when present)"`
	Verbose bool             `short:"v" xor:"verbosity" help:"Log every row and document"`
	Quiet   bool             `short:"q" xor:"verbosity" help:"Log warnings and errors only"`
	LogFile string           `name:"log-file" env:"BLANKDOCS_LOG_FILE" help:"Append the run log to this file (default from profile: make_blank_docs.log)"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Create a blank document for every category flagged as missing"`
	Check    CheckCmd    `cmd:"" help:"Validate the paths and the roster header without writing anything"`
	Init     InitCmd     `cmd:"" help:"Write the default run profile"`
}

// NewParser wires the CLI grammar. Extra options come after the defaults, so
// tests can replace the writers and the exit function.
func NewParser(cli *CLI, g *Global, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("blankdocs"),
		kong.Description("Create empty .docx files for the documents a degree roster marks as missing."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(g.Stdout, g.Stderr),
		kong.Bind(g, cli),
	}
	return kong.New(cli, append(opts, options...)...)
}

// AfterApply runs after flag parsing; installs a console logger so that
// profile loading can already report problems.
func (c *CLI) AfterApply(g *Global) error {
	logger, _, err := observability.NewLogger(observability.LoggerOptions{
		Level:   c.level(config.LogLevelInfo),
		Console: g.Stderr,
	})
	if err != nil {
		return err
	}
	g.Logger = logger
	g.ctx = observability.WithRunID(context.Background(), uuid.NewString())
	return nil
}

// level applies the verbosity flags on top of the profile's level.
func (c *CLI) level(profile config.LogLevel) slog.Level {
	switch {
	case c.Verbose:
		return slog.LevelDebug
	case c.Quiet:
		return slog.LevelWarn
	default:
		return profile.SlogLevel()
	}
}

// loadProfile reads the run profile and replaces the console logger with the
// run logger, which also appends to the log file.
func (c *CLI) loadProfile(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	logFile := c.LogFile
	if logFile == "" {
		logFile = cfg.Logging.File
	}
	logger, closeFn, err := observability.NewLogger(observability.LoggerOptions{
		Level:   c.level(cfg.Logging.Level),
		JSON:    cfg.Logging.Format == config.LogFormatJSON,
		File:    logFile,
		Console: g.Stderr,
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to open log file").
			Fatal().
			WithContext("path", logFile).
			Build()
	}
	g.Logger = logger
	g.closers = append(g.closers, closeFn)

	if len(g.EnvFiles) > 0 {
		logger.Debug("Loaded environment files", slog.Any("files", g.EnvFiles))
	}
	return cfg, nil
}

// RosterFlags are the paths shared by generate and check.
type RosterFlags struct {
	Input  string `short:"i" required:"" env:"BLANKDOCS_INPUT" help:"Roster CSV file"`
	Output string `short:"o" required:"" env:"BLANKDOCS_OUTPUT" help:"Existing directory receiving the documents"`
	Policy string `name:"policy" env:"BLANKDOCS_POLICY" help:"Sentinel policy: strict or legacy (overrides the profile)"`
}

// resolvePolicy applies the --policy override to the profile.
func (f RosterFlags) resolvePolicy(cfg *config.Config) (generator.Policy, error) {
	if f.Policy != "" {
		name, err := config.ParsePolicy(f.Policy)
		if err != nil {
			return generator.Policy{}, ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --policy").
				Fatal().
				WithContext("valid", config.PolicyNames()).
				Build()
		}
		cfg.Policy = name
	}
	return generator.PolicyFor(cfg)
}
