package config

import "github.com/eddiechapman/make-blank-docs/internal/foundation/normalization"

// PolicyName selects how category cells are interpreted.
type PolicyName string

const (
	// PolicyStrict creates a document only for an exact "FALSE" cell.
	PolicyStrict PolicyName = "strict"
	// PolicyLegacy creates a document for any cell other than "T" and zero-pads ids.
	PolicyLegacy PolicyName = "legacy"
)

var policyNormalizer = normalization.NewNormalizer("policy", map[string]PolicyName{
	"strict": PolicyStrict,
	"legacy": PolicyLegacy,
}, PolicyStrict)

// ParsePolicy maps raw onto a PolicyName. Blank input selects strict.
func ParsePolicy(raw string) (PolicyName, error) {
	return policyNormalizer.NormalizeWithError(raw)
}

// PolicyNames lists the accepted policy names.
func PolicyNames() []string {
	return policyNormalizer.ValidKeys()
}
