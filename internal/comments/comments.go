// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package comments reads instructor comments from the comment_*.csv shards of
// a data source. Nothing is cached: every query rescans the shards, so
// results always reflect the files currently on disk.
package comments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/datadir"
	"github.com/pdiddy/bettercls/internal/delimited"
	"github.com/pdiddy/bettercls/pkg/types"
)

// minFields is the column count of a comment shard.
const minFields = 8

// publishLayouts are tried in order when parsing the publish time column.
var publishLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/1/2 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
}

// Store answers comment queries for one data source directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// Option configures Open.
type Option func(*Store)

// WithLogger sets the logger that receives row and file diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open checks that dir exists. Shards are not read until a query runs.
func Open(dir string, opts ...Option) (*Store, error) {
	if err := datadir.RequireDir(dir); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the data source directory.
func (s *Store) Dir() string {
	return s.dir
}

// ByInstructorID returns every comment whose instructor id column equals id
// as text, in shard name order and then line order. Malformed rows and
// unreadable shards are logged and skipped. The error is non-nil only when
// the directory itself cannot be listed.
func (s *Store) ByInstructorID(id string) ([]types.Comment, error) {
	shards, err := datadir.CommentShards(s.dir)
	if err != nil {
		return nil, err
	}

	results := []types.Comment{}
	for _, path := range shards {
		found, err := s.scanShard(path, id)
		if err != nil {
			s.logger.Warn("skipping comment shard", zap.String("file", path), zap.Error(err))
			continue
		}
		results = append(results, found...)
	}
	return results, nil
}

func (s *Store) scanShard(path, id string) ([]types.Comment, error) {
	log := s.logger.With(zap.String("file", path))
	var found []types.Comment

	err := delimited.ScanFile(path, func(lineNo int, line string, fields []string) {
		if len(fields) < minFields {
			log.Warn("skipping malformed comment row",
				zap.Int("line", lineNo), zap.Int("fields", len(fields)), zap.String("row", line))
			return
		}
		if fields[1] != id {
			return
		}

		c, err := parseComment(fields)
		if err != nil {
			log.Warn("skipping unparsable comment row",
				zap.Int("line", lineNo), zap.String("row", line), zap.Error(err))
			return
		}
		found = append(found, c)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func parseComment(fields []string) (types.Comment, error) {
	var (
		c   types.Comment
		err error
	)
	if c.CommentID, err = parseInt64("comment id", fields[0]); err != nil {
		return c, err
	}
	if c.InstructorID, err = parseInt64("instructor id", fields[1]); err != nil {
		return c, err
	}
	if c.PublishTime, err = parsePublishTime(fields[3]); err != nil {
		return c, err
	}
	if c.LikeMinusDislike, err = parseInt("like minus dislike", fields[4]); err != nil {
		return c, err
	}
	if c.LikeCount, err = parseInt("like count", fields[5]); err != nil {
		return c, err
	}
	if c.DislikeCount, err = parseInt("dislike count", fields[6]); err != nil {
		return c, err
	}
	c.InstructorName = fields[2]
	c.Content = DecodeContent(fields[7])
	return c, nil
}

// DecodeContent turns each literal backslash-n pair into a newline.
func DecodeContent(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func parsePublishTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range publishLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing publish time %q: unrecognized format", s)
}

func parseInt64(field, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return n, nil
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return n, nil
}
