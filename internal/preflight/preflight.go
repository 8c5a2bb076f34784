// Package preflight checks the input and output paths before any row is read.
package preflight

import (
	"os"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// Check names used in error context.
const (
	CheckInputExists  = "input_exists"
	CheckInputIsFile  = "input_is_file"
	CheckOutputExists = "output_exists"
	CheckOutputIsDir  = "output_is_dir"
)

// ValidatePaths confirms input is an existing regular file and output is an
// existing directory. It returns the first failed check.
func ValidatePaths(input, output string) error {
	if err := ValidateInput(input); err != nil {
		return err
	}
	return ValidateOutput(output)
}

// ValidateInput confirms input exists and is a regular file.
func ValidateInput(input string) error {
	info, err := os.Stat(input)
	if err != nil {
		return statError(err, "input file not found", CheckInputExists, input)
	}
	if !info.Mode().IsRegular() {
		return ferrors.ValidationError("input path is not a file").
			WithContext("check", CheckInputIsFile).
			WithContext("path", input).
			Build()
	}
	return nil
}

// ValidateOutput confirms output exists and is a directory.
func ValidateOutput(output string) error {
	info, err := os.Stat(output)
	if err != nil {
		return statError(err, "output path not found", CheckOutputExists, output)
	}
	if !info.IsDir() {
		return ferrors.ValidationError("output path is not a directory").
			WithContext("check", CheckOutputIsDir).
			WithContext("path", output).
			Build()
	}
	return nil
}

func statError(err error, message, check, path string) error {
	if os.IsNotExist(err) {
		return ferrors.NotFoundError(message).
			WithCause(err).
			WithContext("check", check).
			WithContext("path", path).
			Build()
	}
	// Permission problems and the like: the path may exist but cannot be inspected.
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot inspect path").
		Fatal().
		WithContext("check", check).
		WithContext("path", path).
		Build()
}
