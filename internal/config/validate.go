package config

import (
	"errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

var validFormats = map[string]bool{
	"table": true,
	"json":  true,
	"plain": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Format != "" && !validFormats[cfg.Format] {
		errs = append(errs, &FieldError{
			Field: "format",
			Value: cfg.Format,
			Err:   ErrInvalidFormat,
		})
	}

	if cfg.LogFormat != "" && !validLogFormats[cfg.LogFormat] {
		errs = append(errs, &FieldError{
			Field: "log_format",
			Value: cfg.LogFormat,
			Err:   ErrInvalidLogFormat,
		})
	}

	return errs
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
