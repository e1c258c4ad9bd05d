// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"sitrep-cli/pkg/report"
)

var (
	// ErrInvalidColumns is the sentinel error wrapped by InvalidColumnsError.
	ErrInvalidColumns = errors.New("invalid columns")
	// ErrInvalidTextWidth is the sentinel error wrapped by InvalidTextWidthError.
	ErrInvalidTextWidth = errors.New("invalid text width")
)

type (
	// Config holds the user-configurable report settings.
	Config struct {
		// Core components are always attempted; missing ones are warned
		// about like any other.
		Core []string `mapstructure:"core" toml:"core"`
		// Optional components extend the report when present.
		Optional []string `mapstructure:"optional" toml:"optional"`
		// Additional components appended by the user.
		Additional []string `mapstructure:"additional" toml:"additional"`
		// Columns is the number of (version, name) pairs per table row.
		Columns int `mapstructure:"columns" toml:"columns"`
		// TextWidth is the wrap width for plain-text rendering.
		TextWidth int `mapstructure:"text_width" toml:"text_width"`
	}

	// InvalidColumnsError is returned when the configured column count is
	// not positive. It wraps ErrInvalidColumns for errors.Is() compatibility.
	InvalidColumnsError struct {
		Value int
	}

	// InvalidTextWidthError is returned when the configured text width is
	// not positive. It wraps ErrInvalidTextWidth for errors.Is() compatibility.
	InvalidTextWidthError struct {
		Value int
	}
)

// Error implements the error interface.
func (e *InvalidColumnsError) Error() string {
	return fmt.Sprintf("%v: %d (must be positive)", ErrInvalidColumns, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidColumnsError) Unwrap() error { return ErrInvalidColumns }

// Error implements the error interface.
func (e *InvalidTextWidthError) Error() string {
	return fmt.Sprintf("%v: %d (must be positive)", ErrInvalidTextWidth, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidTextWidthError) Unwrap() error { return ErrInvalidTextWidth }

// DefaultConfig returns the shipped defaults, derived from the report
// package so the CLI and the library never drift apart.
func DefaultConfig() *Config {
	return &Config{
		Core:       identifierStrings(report.DefaultCore),
		Optional:   identifierStrings(report.DefaultOptional),
		Additional: []string{},
		Columns:    report.DefaultColumns,
		TextWidth:  report.DefaultTextWidth,
	}
}

// Validate checks the rendering geometry.
func (c *Config) Validate() error {
	if c.Columns <= 0 {
		return &InvalidColumnsError{Value: c.Columns}
	}
	if c.TextWidth <= 0 {
		return &InvalidTextWidthError{Value: c.TextWidth}
	}
	return nil
}

// identifierStrings keeps the string identifiers of a default component
// list; live handles have no place in a config file.
func identifierStrings(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
