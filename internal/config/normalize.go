package config

import (
	"strings"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// Normalize case-folds enumerations and trims free-form fields in place.
func Normalize(cfg *Config) error {
	policy, err := ParsePolicy(string(cfg.Policy))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid policy").Fatal().Build()
	}
	cfg.Policy = policy

	if strings.TrimSpace(string(cfg.Logging.Level)) != "" {
		level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid logging.level").Fatal().Build()
		}
		cfg.Logging.Level = level
	}
	if strings.TrimSpace(string(cfg.Logging.Format)) != "" {
		format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid logging.format").Fatal().Build()
		}
		cfg.Logging.Format = format
	}

	cfg.IDColumn = strings.TrimSpace(cfg.IDColumn)
	for i := range cfg.Categories {
		cfg.Categories[i].Name = strings.TrimSpace(cfg.Categories[i].Name)
		cfg.Categories[i].Column = strings.TrimSpace(cfg.Categories[i].Column)
	}
	return nil
}
