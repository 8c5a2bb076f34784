package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/eddiechapman/make-blank-docs/internal/blankdoc"
	"github.com/eddiechapman/make-blank-docs/internal/config"
	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// Category is one tracked document type.
type Category struct {
	// Name is the file name suffix: {id}-{Name}.docx.
	Name string
	// Column is the roster header holding the category's flag.
	Column string
}

// Policy decides which cells trigger a document and how files are named.
type Policy struct {
	Name       config.PolicyName
	IDColumn   string
	PadWidth   int
	Marker     string
	Categories []Category
}

// StrictPolicy triggers on an exact "FALSE" cell and uses ids verbatim.
func StrictPolicy() Policy {
	return Policy{
		Name:     config.PolicyStrict,
		IDColumn: "degree_id",
		Marker:   "FALSE",
		Categories: []Category{
			{Name: "skills", Column: "skills"},
			{Name: "courses", Column: "courses"},
			{Name: "mission", Column: "mission"},
		},
	}
}

// LegacyPolicy triggers on any cell other than "T" and zero-pads ids to three digits.
// File names keep the header casing (004-Skills.docx).
func LegacyPolicy() Policy {
	return Policy{
		Name:     config.PolicyLegacy,
		IDColumn: "Degree_id",
		PadWidth: 3,
		Marker:   "T",
		Categories: []Category{
			{Name: "Skills", Column: "Skills"},
			{Name: "Courses", Column: "Courses"},
			{Name: "Mission", Column: "Mission"},
		},
	}
}

// PolicyFor resolves the profile's policy and applies its overrides.
func PolicyFor(cfg *config.Config) (Policy, error) {
	var p Policy
	switch cfg.Policy {
	case config.PolicyStrict, "":
		p = StrictPolicy()
	case config.PolicyLegacy:
		p = LegacyPolicy()
	default:
		return Policy{}, ferrors.ConfigError("unknown policy").
			WithContext("policy", string(cfg.Policy)).
			WithContext("valid", config.PolicyNames()).
			Build()
	}

	if cfg.IDColumn != "" {
		p.IDColumn = cfg.IDColumn
	}
	if cfg.IDPadWidth > 0 {
		p.PadWidth = cfg.IDPadWidth
	}
	if cfg.Marker != "" {
		p.Marker = cfg.Marker
	}
	if len(cfg.Categories) > 0 {
		p.Categories = make([]Category, 0, len(cfg.Categories))
		for _, c := range cfg.Categories {
			p.Categories = append(p.Categories, Category{Name: c.Name, Column: c.Column})
		}
	}
	return p, nil
}

// Triggers reports whether a category cell asks for a document.
func (p Policy) Triggers(value string) bool {
	if p.Name == config.PolicyLegacy {
		return value != p.Marker
	}
	return value == p.Marker
}

// FormatID applies the policy's zero padding to a raw identifier.
func (p Policy) FormatID(raw string) string {
	return zeroFill(raw, p.PadWidth)
}

// FileName builds the document name for an already formatted id.
func (p Policy) FileName(id string, c Category) string {
	return id + "-" + c.Name + blankdoc.Extension
}

// Columns lists every header the policy reads, identifier first.
func (p Policy) Columns() []string {
	cols := make([]string, 0, len(p.Categories)+1)
	cols = append(cols, p.IDColumn)
	for _, c := range p.Categories {
		cols = append(cols, c.Column)
	}
	return cols
}

// zeroFill left-pads s with zeros to width characters, keeping a leading sign in front.
func zeroFill(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := strings.Repeat("0", width-n)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}
