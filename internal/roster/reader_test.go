package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

func collect(t *testing.T, r *Reader) ([]Record, error) {
	t.Helper()
	var out []Record
	for rec, err := range r.Records() {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func TestReader_RecordsInFileOrder(t *testing.T) {
	src := "degree_id,skills,mission,courses\n204,FALSE,TRUE,FALSE\n17,TRUE,TRUE,TRUE\n"
	r, err := NewReader(strings.NewReader(src), "roster.csv")
	require.NoError(t, err)

	require.Equal(t, []string{"degree_id", "skills", "mission", "courses"}, r.Header())

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, 2, recs[0].Line)
	require.Equal(t, "204", recs[0].Fields["degree_id"])
	v, ok := recs[0].Get("mission")
	require.True(t, ok)
	require.Equal(t, "TRUE", v)

	require.Equal(t, 3, recs[1].Line)
	require.Equal(t, "17", recs[1].Fields["degree_id"])

	_, ok = recs[1].Get("nope")
	require.False(t, ok)
}

func TestReader_HeaderOnly(t *testing.T) {
	r, err := NewReader(strings.NewReader("degree_id,skills,mission,courses\n"), "empty.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestReader_EmptyFile(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "blank.csv")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryRoster))
}

func TestReader_StripsByteOrderMark(t *testing.T) {
	src := "\ufeffDegree_id,Skills\n4,F\n"
	r, err := NewReader(strings.NewReader(src), "bom.csv")
	require.NoError(t, err)
	require.Equal(t, "Degree_id", r.Header()[0])

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, "4", recs[0].Fields["Degree_id"])
}

func TestReader_InvalidUTF8IsFatal(t *testing.T) {
	src := "degree_id,skills,mission,courses\n204,FALSE,TRUE,TRUE\n\xff1,FALSE,TRUE,TRUE\n"
	r, err := NewReader(strings.NewReader(src), "latin1.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.Len(t, recs, 1)
	require.Error(t, err)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, ferrors.CategoryRoster, classified.Category())
	line, _ := classified.Context().Get("line")
	require.Equal(t, 3, line)
	column, _ := classified.Context().Get("column")
	require.Equal(t, "degree_id", column)
}

func TestReader_InvalidUTF8InHeader(t *testing.T) {
	_, err := NewReader(strings.NewReader("\xffdegree_id,skills\n1,FALSE\n"), "latin1.csv")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryRoster))
}

func TestReader_ReplacementCharacterIsKept(t *testing.T) {
	r, err := NewReader(strings.NewReader("degree_id\n\ufffd1\n"), "utf8.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, "\ufffd1", recs[0].Fields["degree_id"])
}

func TestReader_QuotedFieldsAndMultilineLineNumbers(t *testing.T) {
	src := "degree_id,note\n1,\"a, b\"\n2,\"multi\nline\"\n3,x\n"
	r, err := NewReader(strings.NewReader(src), "quoted.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "a, b", recs[0].Fields["note"])
	require.Equal(t, "multi\nline", recs[1].Fields["note"])
	require.Equal(t, 5, recs[2].Line)
}

func TestReader_ShortRowIsParseError(t *testing.T) {
	src := "degree_id,skills,mission,courses\n204,FALSE,TRUE,FALSE\n205,FALSE\n206,TRUE,TRUE,TRUE\n"
	r, err := NewReader(strings.NewReader(src), "short.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.Len(t, recs, 1, "records before the bad row are still delivered")
	require.Error(t, err)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, ferrors.CategoryRoster, classified.Category())
	line, _ := classified.Context().Get("line")
	require.Equal(t, 3, line)
}

func TestReader_MalformedQuote(t *testing.T) {
	r, err := NewReader(strings.NewReader("degree_id,skills\n1,\"unterminated\n"), "bad.csv")
	require.NoError(t, err)

	_, err = collect(t, r)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryRoster))
}

func TestReader_SinglePass(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\n1\n"), "once.csv")
	require.NoError(t, err)

	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	_, err = collect(t, r)
	require.Error(t, err)
}

func TestReader_EarlyBreak(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\n1\n2\n3\n"), "break.csv")
	require.NoError(t, err)

	n := 0
	for _, err := range r.Records() {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestRequireColumns(t *testing.T) {
	r, err := NewReader(strings.NewReader("degree_id,skills,mission\n"), "cols.csv")
	require.NoError(t, err)

	require.NoError(t, r.RequireColumns("degree_id", "skills"))

	err = r.RequireColumns("degree_id", "courses", "Skills")
	require.Error(t, err)
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	missing, _ := classified.Context().Get("missing")
	require.Equal(t, []string{"courses", "Skills"}, missing)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte("degree_id,skills\n9,FALSE\n"), 0o600))

	r, err := Open(path)
	require.NoError(t, err)
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "second close is a no-op")
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}
