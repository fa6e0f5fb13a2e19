// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datadir names the files of an instructor data source and checks
// that they exist.
package datadir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File names inside a data source directory. Names are case-sensitive.
const (
	TeachersFile   = "teachers.csv"
	GpaFile        = "gpa.json"
	CommentPattern = "comment_*.csv"
)

var (
	// ErrDirNotFound reports a data source directory that does not exist.
	ErrDirNotFound = errors.New("data directory not found")

	// ErrFileNotFound reports a required file missing from the data source.
	ErrFileNotFound = errors.New("required file not found")
)

// RequireDir returns an error wrapping ErrDirNotFound unless dir exists and
// is a directory.
func RequireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return fmt.Errorf("checking data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}
	return nil
}

// RequireFile checks dir and then dir/name, returning the file path. A
// missing file yields an error wrapping ErrFileNotFound.
func RequireFile(dir, name string) (string, error) {
	if err := RequireDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	return path, nil
}

// CommentShards lists the comment shard files in dir, sorted by name.
func CommentShards(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(CommentPattern, entry.Name()); ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
