package config

import (
	"strings"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// maxPadWidth bounds id_pad_width; ids wider than this are not plausible roster keys.
const maxPadWidth = 16

// Validate checks a normalized profile.
func Validate(cfg *Config) error {
	if cfg.IDPadWidth < 0 || cfg.IDPadWidth > maxPadWidth {
		return ferrors.ConfigError("id_pad_width out of range").
			WithContext("id_pad_width", cfg.IDPadWidth).
			WithContext("max", maxPadWidth).
			Build()
	}

	seen := make(map[string]struct{}, len(cfg.Categories))
	for i, c := range cfg.Categories {
		if c.Name == "" || c.Column == "" {
			return ferrors.ConfigError("category requires name and column").
				WithContext("index", i).
				Build()
		}
		if strings.ContainsAny(c.Name, `/\`) || c.Name == "." || c.Name == ".." {
			return ferrors.ConfigError("category name must be a plain file name component").
				WithContext("name", c.Name).
				Build()
		}
		if _, dup := seen[c.Name]; dup {
			return ferrors.ConfigError("duplicate category name").
				WithContext("name", c.Name).
				Build()
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
