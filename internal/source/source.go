// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source decides which directory the instructor data is read from
// and checks whether a candidate directory is usable.
package source

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/catalog"
	"github.com/pdiddy/bettercls/internal/settings"
)

// builtinDir is the data directory shipped next to the executable.
var builtinDir = filepath.Join("assets", "database")

// DefaultDir returns the built-in data directory, resolved against the
// directory of the running executable. When the executable path is unknown
// it is resolved against the working directory.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return builtinDir
	}
	return filepath.Join(filepath.Dir(exe), builtinDir)
}

// IsUnset reports whether a configured path means "not overridden".
func IsUnset(configured string) bool {
	return configured == "" || configured == settings.Unset
}

// Resolve returns configured unless it is unset, in which case it returns
// fallback.
func Resolve(configured, fallback string) string {
	if IsUnset(configured) {
		return fallback
	}
	return configured
}

// Status is the outcome of checking a candidate data directory.
type Status int

const (
	// StatusOK means the directory loads and contains the first profile.
	StatusOK Status = iota

	// StatusEmpty means the directory loads but has no profile with id 1.
	StatusEmpty

	// StatusInvalid means the directory or its teachers.csv is missing or
	// unreadable.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Message is the short notification shown for s.
func (s Status) Message() string {
	switch s {
	case StatusOK:
		return "data source updated"
	case StatusEmpty:
		return "data source is empty"
	default:
		return "data source is not valid"
	}
}

// Check loads the profile table in dir and classifies the result. The
// returned error explains StatusInvalid and is nil otherwise.
func Check(dir string, logger *zap.Logger) (Status, error) {
	c, err := catalog.Load(dir, catalog.WithLogger(logger))
	if err != nil {
		return StatusInvalid, err
	}
	if _, ok := c.FindByID(1); !ok {
		return StatusEmpty, nil
	}
	return StatusOK, nil
}
