package blankdoc

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	docx "github.com/fumiama/go-docx"
	"github.com/stretchr/testify/require"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("zip entry %s not found", name)
	return ""
}

func TestRender_IsEmptyWordDocument(t *testing.T) {
	data, err := Render()
	require.NoError(t, err)

	require.Contains(t, readZipEntry(t, data, "[Content_Types].xml"), "wordprocessingml")
	body := readZipEntry(t, data, "word/document.xml")
	require.Contains(t, body, "<w:body")
	require.NotContains(t, body, "<w:t>")
	require.NotContains(t, body, "<w:t ")

	_, err = docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
}

func TestDocxWriter_WriteBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "204-skills.docx")
	w := NewDocxWriter()

	require.NoError(t, w.WriteBlank(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	readZipEntry(t, data, "word/document.xml")
}

func TestDocxWriter_OverwritesSilently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "204-skills.docx")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o600))

	w := NewDocxWriter()
	require.NoError(t, w.WriteBlank(path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteBlank(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
	readZipEntry(t, second, "word/document.xml")
}

func TestDocxWriter_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "204-skills.docx")

	err := NewDocxWriter().WriteBlank(path)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}
