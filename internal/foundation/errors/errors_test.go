package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			Fatal().
			WithContext("file", "config.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "config.yaml" {
			t.Errorf("expected context file=config.yaml, got %v", file)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("preflight: %w", NotFoundError("input file not found").Build())

		classified, ok := AsClassified(err)
		if !ok {
			t.Fatal("expected wrapped error to be classified")
		}
		if !HasCategory(err, CategoryNotFound) {
			t.Error("expected error to have not_found category")
		}
		if HasCategory(errors.New("plain"), CategoryInternal) {
			t.Error("expected plain errors to have no category")
		}
		if classified.Severity() != SeverityFatal {
			t.Errorf("expected fatal severity, got %s", classified.Severity())
		}
	})

	t.Run("Error string", func(t *testing.T) {
		err := WrapError(errors.New("disk full"), CategoryFileSystem, "write document").Fatal().Build()
		want := "[filesystem:fatal] write document: disk full"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("WithContext returns a copy", func(t *testing.T) {
		base := RosterError("parse failed").Build()
		withLine := base.WithContext("line", 4)

		if _, ok := base.Context().Get("line"); ok {
			t.Error("expected original error context to be unchanged")
		}
		if line, _ := withLine.Context().Get("line"); line != 4 {
			t.Errorf("expected line=4, got %v", line)
		}
		if !errors.Is(withLine, base) {
			t.Error("expected errors with equal category and message to match")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryRoster, "read roster").
			Fatal().
			WithContext("path", "roster.csv").
			WithContext("line", 3).
			Build()

		if err.Category() != CategoryRoster {
			t.Errorf("expected category %s, got %s", CategoryRoster, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}

		path, _ := err.Context().GetString("path")
		if path != "roster.csv" {
			t.Errorf("expected path context 'roster.csv', got %s", path)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig},
			{"ValidationError", ValidationError("test"), CategoryValidation},
			{"NotFoundError", NotFoundError("test"), CategoryNotFound},
			{"RosterError", RosterError("test"), CategoryRoster},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem},
			{"InternalError", InternalError("test"), CategoryInternal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if !err.IsFatal() {
					t.Errorf("expected %s to be fatal, got %s", tt.name, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, exists1 := ctx.GetString("key1")
		if !exists1 || value1 != "value1" {
			t.Errorf("expected key1=value1, got %v", value1)
		}

		value2, exists2 := ctx.Get("key2")
		if !exists2 || value2 != 42 {
			t.Errorf("expected key2=42, got %v", value2)
		}

		if _, exists3 := ctx.Get("nonexistent"); exists3 {
			t.Error("expected nonexistent key to not exist")
		}
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := ErrorContext{"key1": "value1", "shared": "original"}
		ctx2 := ErrorContext{"key2": "value2", "shared": "overridden"}

		merged := ctx1.Merge(ctx2)

		value1, _ := merged.GetString("key1")
		value2, _ := merged.GetString("key2")
		shared, _ := merged.GetString("shared")

		if value1 != "value1" {
			t.Errorf("expected key1=value1, got %s", value1)
		}
		if value2 != "value2" {
			t.Errorf("expected key2=value2, got %s", value2)
		}
		if shared != "overridden" {
			t.Errorf("expected shared=overridden, got %s", shared)
		}
	})
}
