package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyInput      = "input"
	KeyOutput     = "output"
	KeyPath       = "path"
	KeyLine       = "line"
	KeyDegreeID   = "degree_id"
	KeyCategory   = "category"
	KeyColumn     = "column"
	KeyPolicy     = "policy"
	KeyRows       = "rows"
	KeyDocuments  = "documents"
	KeyDryRun     = "dry_run"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Input(p string) slog.Attr        { return slog.String(KeyInput, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Line(n int) slog.Attr            { return slog.Int(KeyLine, n) }
func DegreeID(id string) slog.Attr    { return slog.String(KeyDegreeID, id) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Column(c string) slog.Attr       { return slog.String(KeyColumn, c) }
func Policy(p string) slog.Attr       { return slog.String(KeyPolicy, p) }
func Rows(n int) slog.Attr            { return slog.Int(KeyRows, n) }
func Documents(n int) slog.Attr       { return slog.Int(KeyDocuments, n) }
func DryRun(b bool) slog.Attr         { return slog.Bool(KeyDryRun, b) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil { return slog.String(KeyError, "") }
	return slog.String(KeyError, err.Error())
}
