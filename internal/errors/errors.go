package errors

import (
	"errors"
	"fmt"
)

// All resolution errors are deterministic configuration defects. None of them
// are retryable: re-running a pure resolver with the same inputs produces the
// same failure, so every error here requires a config fix and a re-run.

// ErrConfigValidation indicates the environment configuration is missing a
// required stage mapping. This is fatal for process startup: a partial
// environment map can silently point deployments at the wrong account.
var ErrConfigValidation = errors.New("environment configuration validation error")

// ErrInvalidRunnerConfig indicates a resolved environment spec is missing its
// account or region at plan-resolution time. This fails the affected fleet's
// resolution only; other fleets resolve independently.
var ErrInvalidRunnerConfig = errors.New("invalid runner configuration")

// ErrUnsupportedPlatform indicates a descriptor names a platform/arch
// combination the dispatch table does not cover. It is surfaced to the caller
// rather than defaulted: falling back to Linux defaults for an unrecognized
// platform would provision the wrong compute shape.
var ErrUnsupportedPlatform = errors.New("unsupported runner platform")

// WrapConfigValidation wraps an error as an environment configuration
// validation error. If the error already carries the sentinel it is returned
// as-is.
func WrapConfigValidation(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrConfigValidation) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrConfigValidation, err)
}

// WrapInvalidRunnerConfig wraps an error as an invalid runner configuration
// error.
func WrapInvalidRunnerConfig(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrInvalidRunnerConfig) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidRunnerConfig, err)
}

// WrapUnsupportedPlatform wraps an error as an unsupported platform error.
func WrapUnsupportedPlatform(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUnsupportedPlatform) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
}

// IsConfigValidation checks if an error is an environment configuration
// validation error.
func IsConfigValidation(err error) bool {
	return errors.Is(err, ErrConfigValidation)
}

// IsInvalidRunnerConfig checks if an error is an invalid runner configuration
// error.
func IsInvalidRunnerConfig(err error) bool {
	return errors.Is(err, ErrInvalidRunnerConfig)
}

// IsUnsupportedPlatform checks if an error is an unsupported platform error.
func IsUnsupportedPlatform(err error) bool {
	return errors.Is(err, ErrUnsupportedPlatform)
}

// IsStartupFatal checks if an error must abort process startup.
// Environment configuration errors are startup-fatal; per-fleet resolution
// errors are not.
func IsStartupFatal(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrConfigValidation)
}
