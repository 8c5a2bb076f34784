package helpers

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper rooted at baseDir.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileNotExists validates that a file does not exist.
func (fa *FileAssertions) AssertFileNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected file not to exist: %s", fullPath)
	}
	return fa
}

// AssertFiles validates that the base directory holds exactly the named regular files.
func (fa *FileAssertions) AssertFiles(expected ...string) *FileAssertions {
	fa.t.Helper()
	got := fa.Files()
	want := append([]string(nil), expected...)
	sort.Strings(want)

	if len(got) != len(want) {
		fa.t.Errorf("Expected files %v in %s, found %v", want, fa.baseDir, got)
		return fa
	}
	for i := range want {
		if got[i] != want[i] {
			fa.t.Errorf("Expected files %v in %s, found %v", want, fa.baseDir, got)
			return fa
		}
	}
	return fa
}

// AssertWordDocument validates that a file is a zip package with a Word main part.
func (fa *FileAssertions) AssertWordDocument(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	zr, err := zip.OpenReader(fullPath)
	if err != nil {
		fa.t.Errorf("Expected %s to be a zip package: %v", fullPath, err)
		return fa
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return fa
		}
	}
	fa.t.Errorf("Expected %s to contain word/document.xml", fullPath)
	return fa
}

// Files returns the sorted names of regular files directly under the base directory.
func (fa *FileAssertions) Files() []string {
	fa.t.Helper()
	entries, err := os.ReadDir(fa.baseDir)
	if err != nil {
		fa.t.Fatalf("Failed to read directory %s: %v", fa.baseDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
