// Package errors defines the sentinel errors shared across the gleaner
// harvester and small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrConfigMissing    = fmt.Errorf("configuration file does not exist")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrInvalidDuration  = fmt.Errorf("invalid time resolution")
	ErrAbsoluteTemplate = fmt.Errorf("local path template must be relative")
	ErrToolTooOld       = fmt.Errorf("dataset requires a newer harvester version")

	// Date range errors.
	ErrFutureStart     = fmt.Errorf("start date cannot be in the future")
	ErrEndBeforeStart  = fmt.Errorf("end date cannot be before start date")
	ErrInvalidDayCount = fmt.Errorf("cannot harvest fewer than 1 days")
	ErrOverconstrained = fmt.Errorf("cannot specify all of start date, end date and number of days")

	// Fetch errors.
	ErrFetchFailed     = fmt.Errorf("download failed")
	ErrWildcardInDir   = fmt.Errorf("wildcards are only supported in the base filename")
	ErrMultipleMatches = fmt.Errorf("multiple wildcard matches not supported")

	// Mirror errors.
	ErrInvalidRemotePath = fmt.Errorf("invalid remote base path")
	ErrMirrorUpload      = fmt.Errorf("failed to upload to object store")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
