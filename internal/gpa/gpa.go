// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gpa loads per-instructor course statistics from gpa.json and
// answers lookups by instructor name and by course name.
//
// The document is a JSON object mapping instructor names to arrays of
// [courseName, averageGpa, studentCount, standardDeviation] tuples. Tuples are
// stored raw and converted at query time; a tuple that cannot be converted is
// logged and skipped by every query.
package gpa

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/datadir"
	"github.com/pdiddy/bettercls/pkg/types"
)

// tupleLen is the number of elements a course tuple must carry.
const tupleLen = 4

// NoStudentCount replaces a null student count.
const NoStudentCount = "no data"

var errShortTuple = errors.New("course tuple has fewer than 4 elements")

type entry struct {
	name    string
	courses []types.CourseTuple
}

// Index holds the raw contents of one gpa.json in document order.
type Index struct {
	entries []entry
	raw     map[string][]types.CourseTuple
	logger  *zap.Logger
}

// Option configures Load.
type Option func(*Index)

// WithLogger sets the logger that receives tuple diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(ix *Index) {
		if l != nil {
			ix.logger = l
		}
	}
}

// Load reads dir/gpa.json. It fails when the directory or file is missing or
// when the document is not an object of tuple arrays. Keys are kept in
// document order and repeated keys are all retained.
func Load(dir string, opts ...Option) (*Index, error) {
	ix := &Index{logger: zap.NewNop(), raw: make(map[string][]types.CourseTuple)}
	for _, opt := range opts {
		opt(ix)
	}

	path, err := datadir.RequireFile(dir, datadir.GpaFile)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := decode(json.NewDecoder(f))
	if err != nil {
		return nil, fmt.Errorf("loading GPA data from %s: %w", path, err)
	}

	ix.entries = entries
	for _, e := range entries {
		ix.raw[e.name] = append(ix.raw[e.name], e.courses...)
	}

	ix.logger.Info("loaded GPA data", zap.String("file", path), zap.Int("instructors", len(ix.raw)))
	return ix, nil
}

func decode(dec *json.Decoder) ([]entry, error) {
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading document start: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("document must be a JSON object, found %v", tok)
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading instructor name: %w", err)
		}
		name, _ := tok.(string)

		var courses []types.CourseTuple
		if err := dec.Decode(&courses); err != nil {
			return nil, fmt.Errorf("decoding courses for %q: %w", name, err)
		}
		entries = append(entries, entry{name: name, courses: courses})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading document end: %w", err)
	}
	return entries, nil
}

// CoursesByInstructor returns the courses of every instructor whose name
// equals name, ignoring case. Lists of repeated keys are concatenated in
// document order.
func (ix *Index) CoursesByInstructor(name string) []types.CourseGpaRecord {
	results := []types.CourseGpaRecord{}
	for _, e := range ix.entries {
		if !strings.EqualFold(e.name, name) {
			continue
		}
		for _, t := range e.courses {
			rec, err := toRecord(e.name, t)
			if err != nil {
				ix.skip(e.name, t, err)
				continue
			}
			results = append(results, rec)
		}
	}
	return results
}

// InstructorsByCourse returns, across all instructors, every tuple whose
// course name equals course, ignoring case.
func (ix *Index) InstructorsByCourse(course string) []types.CourseGpaRecord {
	results := []types.CourseGpaRecord{}
	for _, e := range ix.entries {
		for _, t := range e.courses {
			if len(t) < tupleLen {
				ix.skip(e.name, t, errShortTuple)
				continue
			}
			if !strings.EqualFold(text(t[0]), course) {
				continue
			}
			rec, err := toRecord(e.name, t)
			if err != nil {
				ix.skip(e.name, t, err)
				continue
			}
			results = append(results, rec)
		}
	}
	return results
}

// Instructors returns the instructor names in document order, including
// repeats.
func (ix *Index) Instructors() []string {
	names := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		names[i] = e.name
	}
	return names
}

// AllData returns the raw mapping from instructor name to course tuples.
// The returned map is shared and must not be modified.
func (ix *Index) AllData() map[string][]types.CourseTuple {
	return ix.raw
}

func (ix *Index) skip(name string, t types.CourseTuple, err error) {
	ix.logger.Warn("skipping course tuple",
		zap.String("instructor", name), zap.Any("tuple", []any(t)), zap.Error(err))
}

func toRecord(teacher string, t types.CourseTuple) (types.CourseGpaRecord, error) {
	if len(t) < tupleLen {
		return types.CourseGpaRecord{}, errShortTuple
	}

	avg, err := number(t[1])
	if err != nil {
		return types.CourseGpaRecord{}, fmt.Errorf("average GPA: %w", err)
	}
	sd, err := number(t[3])
	if err != nil {
		return types.CourseGpaRecord{}, fmt.Errorf("standard deviation: %w", err)
	}

	count := NoStudentCount
	if t[2] != nil {
		count = text(t[2])
	}

	return types.CourseGpaRecord{
		CourseName:        text(t[0]),
		TeacherName:       teacher,
		AverageGpa:        avg,
		StudentCount:      count,
		StandardDeviation: sd,
	}, nil
}

// text renders a decoded JSON value as a string. Null renders as "".
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// number converts a decoded JSON value to float64. Null converts to 0 and
// numeric strings are parsed.
func number(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		return x.Float64()
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", x, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", x, x)
	}
}
