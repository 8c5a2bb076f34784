// Package blankdoc writes empty Word (.docx) documents.
package blankdoc

import (
	"bytes"
	"os"
	"sync"

	docx "github.com/fumiama/go-docx"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// Extension is the file extension of generated documents.
const Extension = ".docx"

// Writer creates a blank document at path, replacing any existing file.
type Writer interface {
	WriteBlank(path string) error
}

// DocxWriter renders an empty WordprocessingML package once and writes
// the same bytes for every document.
type DocxWriter struct {
	once     sync.Once
	template []byte
	err      error
	perm     os.FileMode
}

// NewDocxWriter returns a writer producing files with mode 0644.
func NewDocxWriter() *DocxWriter {
	return &DocxWriter{perm: 0o644}
}

// Render returns the bytes of an empty document.
func Render() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := docx.New().WithDefaultTheme().WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBlank writes an empty document to path. An existing file is truncated
// and overwritten without notice.
func (w *DocxWriter) WriteBlank(path string) error {
	w.once.Do(func() {
		w.template, w.err = Render()
	})
	if w.err != nil {
		return ferrors.WrapError(w.err, ferrors.CategoryInternal, "failed to render blank document").Fatal().Build()
	}

	if err := os.WriteFile(path, w.template, w.perm); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write document").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
