// Package generator turns roster records into blank category documents.
package generator

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/eddiechapman/make-blank-docs/internal/blankdoc"
	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
	"github.com/eddiechapman/make-blank-docs/internal/logfields"
	"github.com/eddiechapman/make-blank-docs/internal/metrics"
	"github.com/eddiechapman/make-blank-docs/internal/observability"
	"github.com/eddiechapman/make-blank-docs/internal/roster"
)

// Options configures a Generator. Zero values get no-op collaborators,
// except Writer which defaults to a real .docx writer.
type Options struct {
	Policy    Policy
	OutputDir string
	Writer    blankdoc.Writer
	Recorder  metrics.Recorder
	Logger    *slog.Logger
	// DryRun logs the documents that would be written without touching the disk.
	DryRun bool
}

// Generator writes the documents for one record at a time.
type Generator struct {
	policy    Policy
	outputDir string
	writer    blankdoc.Writer
	recorder  metrics.Recorder
	logger    *slog.Logger
	dryRun    bool
}

// Document is one document produced (or planned) for a record.
type Document struct {
	Category Category
	Path     string
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		policy:    opts.Policy,
		outputDir: opts.OutputDir,
		writer:    opts.Writer,
		recorder:  opts.Recorder,
		logger:    opts.Logger,
		dryRun:    opts.DryRun,
	}
	if g.writer == nil {
		g.writer = blankdoc.NewDocxWriter()
	}
	if g.recorder == nil {
		g.recorder = metrics.NoopRecorder{}
	}
	if g.logger == nil {
		g.logger = observability.NewDiscardLogger()
	}
	return g
}

// Generate writes one blank document for every category of rec whose cell
// triggers the policy, in policy order. The first write failure aborts.
func (g *Generator) Generate(ctx context.Context, rec roster.Record) ([]Document, error) {
	rawID, ok := rec.Get(g.policy.IDColumn)
	if !ok {
		return nil, ferrors.RosterError("record has no identifier column").
			WithContext("line", rec.Line).
			WithContext("column", g.policy.IDColumn).
			Build()
	}
	id := g.policy.FormatID(rawID)
	if err := checkID(id); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRoster, "invalid degree identifier").
			Fatal().
			WithContext("line", rec.Line).
			WithContext("degree_id", rawID).
			Build()
	}

	var docs []Document
	for _, c := range g.policy.Categories {
		value, ok := rec.Get(c.Column)
		if !ok {
			return docs, ferrors.RosterError("record has no category column").
				WithContext("line", rec.Line).
				WithContext("column", c.Column).
				Build()
		}
		if !g.policy.Triggers(value) {
			continue
		}

		path := filepath.Join(g.outputDir, g.policy.FileName(id, c))
		attrs := []slog.Attr{
			logfields.Line(rec.Line),
			logfields.DegreeID(id),
			logfields.Category(c.Name),
			logfields.Path(path),
		}

		if g.dryRun {
			g.logger.LogAttrs(ctx, slog.LevelInfo, "Would create document", attrs...)
			docs = append(docs, Document{Category: c, Path: path})
			continue
		}

		if err := g.writer.WriteBlank(path); err != nil {
			return docs, err
		}
		g.recorder.IncDocumentCreated(c.Name)
		g.logger.LogAttrs(ctx, slog.LevelDebug, "Document saved", attrs...)
		docs = append(docs, Document{Category: c, Path: path})
	}
	return docs, nil
}

type idError string

func (e idError) Error() string { return string(e) }

// checkID rejects formatted identifiers that cannot form a single file name component.
func checkID(id string) error {
	if id == "" {
		return idError("identifier is empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return idError("identifier is not a plain file name component")
	}
	return nil
}
