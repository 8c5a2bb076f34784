// Package roster streams degree-program records from a CSV file.
package roster

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// Record is one data row keyed by header name.
type Record struct {
	// Line is the 1-based line the record starts on.
	Line   int
	Fields map[string]string
}

// Get returns the value of column and whether the header has it.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// Reader is a single-pass CSV roster reader.
type Reader struct {
	path     string
	file     io.Closer
	csv      *csv.Reader
	header   []string
	consumed bool
}

// Open opens path and reads the header row. The caller must Close the reader.
func Open(path string) (*Reader, error) {
	// #nosec G304 -- roster path is validated by preflight and supplied by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to open roster").
			Fatal().
			WithContext("path", path).
			Build()
	}

	r, err := newReader(f, path)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader reads a roster from an arbitrary stream. Close is a no-op for it.
func NewReader(src io.Reader, name string) (*Reader, error) {
	return newReader(src, name)
}

func newReader(src io.Reader, name string) (*Reader, error) {
	// Input is UTF-8; a leading byte-order mark (as written by spreadsheet exports)
	// is dropped. Bytes pass through unchanged so invalid sequences reach checkUTF8.
	decoded := transform.NewReader(src, unicode.BOMOverride(transform.Nop))

	cr := csv.NewReader(decoded)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ferrors.RosterError("roster has no header row").WithContext("path", name).Build()
	}
	if err != nil {
		return nil, parseError(err, name)
	}
	if err := checkUTF8(header, header, 1, name); err != nil {
		return nil, err
	}
	// Every data row must have one field per header column.
	cr.FieldsPerRecord = len(header)

	return &Reader{path: name, csv: cr, header: header}, nil
}

// Header returns a copy of the header row.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// RequireColumns reports the first column missing from the header.
func (r *Reader) RequireColumns(columns ...string) error {
	present := make(map[string]struct{}, len(r.header))
	for _, h := range r.header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, c := range columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return ferrors.RosterError("roster is missing required columns").
			WithContext("path", r.path).
			WithContext("missing", missing).
			WithContext("header", r.Header()).
			Build()
	}
	return nil
}

// Records yields data rows in file order. Iteration stops after the first
// error. The sequence can be consumed once; later calls yield an error.
func (r *Reader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		if r.consumed {
			yield(Record{}, ferrors.InternalError("roster already consumed").WithContext("path", r.path).Build())
			return
		}
		r.consumed = true

		for {
			row, err := r.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Record{}, parseError(err, r.path))
				return
			}
			line, _ := r.csv.FieldPos(0)
			if err := checkUTF8(row, r.header, line, r.path); err != nil {
				yield(Record{}, err)
				return
			}

			fields := make(map[string]string, len(r.header))
			for i, name := range r.header {
				fields[name] = row[i]
			}
			if !yield(Record{Line: line, Fields: fields}, nil) {
				return
			}
		}
	}
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func parseError(err error, path string) error {
	b := ferrors.WrapError(err, ferrors.CategoryRoster, "failed to parse roster").
		Fatal().
		WithContext("path", path)
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		b = b.WithContext("line", pe.Line)
	}
	return b.Build()
}

// checkUTF8 rejects a row holding invalid UTF-8 instead of letting it reach a file name.
func checkUTF8(row, header []string, line int, path string) error {
	for i, field := range row {
		if utf8.ValidString(field) {
			continue
		}
		return ferrors.RosterError("roster contains invalid UTF-8").
			WithContext("path", path).
			WithContext("line", line).
			WithContext("column", header[i]).
			Build()
	}
	return nil
}
