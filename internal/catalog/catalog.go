// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads instructor profiles from teachers.csv and answers
// lookups against the loaded set.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/datadir"
	"github.com/pdiddy/bettercls/internal/delimited"
	"github.com/pdiddy/bettercls/pkg/types"
)

// minFields is the column count of teachers.csv.
const minFields = 8

// Catalog is the ordered, read-only set of profiles from one data source.
type Catalog struct {
	profiles []types.InstructorProfile
	byID     map[int]int
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives row diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads dir/teachers.csv. Rows that are too short, fail to parse, or
// repeat an earlier id are logged and skipped. Load fails only when the
// directory or the file is missing or unreadable.
func Load(dir string, opts ...Option) (*Catalog, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	path, err := datadir.RequireFile(dir, datadir.TeachersFile)
	if err != nil {
		return nil, err
	}

	log := o.logger.With(zap.String("file", path))
	c := &Catalog{byID: make(map[int]int)}

	err = delimited.ScanFile(path, func(lineNo int, line string, fields []string) {
		if len(fields) < minFields {
			log.Warn("skipping malformed profile row",
				zap.Int("line", lineNo), zap.Int("fields", len(fields)), zap.String("row", line))
			return
		}

		p, err := parseProfile(fields)
		if err != nil {
			log.Warn("skipping unparsable profile row",
				zap.Int("line", lineNo), zap.String("row", line), zap.Error(err))
			return
		}

		if _, dup := c.byID[p.ID]; dup {
			log.Warn("skipping duplicate profile id", zap.Int("line", lineNo), zap.Int("id", p.ID))
			return
		}

		c.byID[p.ID] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	})
	if err != nil {
		return nil, fmt.Errorf("loading instructor profiles: %w", err)
	}

	log.Info("loaded instructor profiles", zap.Int("count", len(c.profiles)))
	return c, nil
}

func parseProfile(fields []string) (types.InstructorProfile, error) {
	id, err := atoi("id", fields[0])
	if err != nil {
		return types.InstructorProfile{}, err
	}
	heat, err := atoi("heat", fields[3])
	if err != nil {
		return types.InstructorProfile{}, err
	}
	raters, err := atoi("rater count", fields[4])
	if err != nil {
		return types.InstructorProfile{}, err
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return types.InstructorProfile{}, fmt.Errorf("parsing rating %q: %w", fields[5], err)
	}

	return types.InstructorProfile{
		ID:                 id,
		Name:               fields[1],
		Department:         fields[2],
		Heat:               heat,
		RaterCount:         raters,
		Rating:             rating,
		Pinyin:             fields[6],
		PinyinAbbreviation: fields[7],
	}, nil
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return n, nil
}

// Len returns the number of loaded profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// FindByNamePart returns profiles whose name contains part, ignoring case, in
// load order. Empty or whitespace-only input matches nothing.
func (c *Catalog) FindByNamePart(part string) []types.InstructorProfile {
	if strings.TrimSpace(part) == "" {
		return []types.InstructorProfile{}
	}
	needle := strings.ToLower(part)
	return c.filter(func(p types.InstructorProfile) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// FindByPinyin returns profiles whose romanized name or its abbreviation
// contains part, ignoring case. Empty or whitespace-only input matches
// nothing.
func (c *Catalog) FindByPinyin(part string) []types.InstructorProfile {
	if strings.TrimSpace(part) == "" {
		return []types.InstructorProfile{}
	}
	needle := strings.ToLower(part)
	return c.filter(func(p types.InstructorProfile) bool {
		return strings.Contains(strings.ToLower(p.Pinyin), needle) ||
			strings.Contains(strings.ToLower(p.PinyinAbbreviation), needle)
	})
}

// FindByID returns the profile with the given id.
func (c *Catalog) FindByID(id int) (types.InstructorProfile, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.InstructorProfile{}, false
	}
	return c.profiles[i], true
}

// FindByDepartment returns profiles whose department equals name, ignoring
// case.
func (c *Catalog) FindByDepartment(name string) []types.InstructorProfile {
	return c.filter(func(p types.InstructorProfile) bool {
		return strings.EqualFold(p.Department, name)
	})
}

// All returns a copy of every profile in load order.
func (c *Catalog) All() []types.InstructorProfile {
	out := make([]types.InstructorProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

func (c *Catalog) filter(keep func(types.InstructorProfile) bool) []types.InstructorProfile {
	out := []types.InstructorProfile{}
	for _, p := range c.profiles {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
