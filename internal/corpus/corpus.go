// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus opens every component of one data source directory and
// combines their queries into the views the CLI presents.
package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/bettercls/internal/catalog"
	"github.com/pdiddy/bettercls/internal/comments"
	"github.com/pdiddy/bettercls/internal/gpa"
	"github.com/pdiddy/bettercls/pkg/types"
)

// ErrProfileNotFound reports a profile id absent from the catalog.
var ErrProfileNotFound = errors.New("instructor profile not found")

// Corpus is the loaded data of one source directory. Build a new Corpus
// when the directory changes.
type Corpus struct {
	Dir      string
	Catalog  *catalog.Catalog
	Comments *comments.Store
	Gpa      *gpa.Index
}

// Open loads the profile table and GPA document from dir and prepares the
// comment store. Any construction failure is returned and no Corpus is
// produced.
func Open(dir string, logger *zap.Logger) (*Corpus, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := catalog.Load(dir, catalog.WithLogger(logger.Named("catalog")))
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	cs, err := comments.Open(dir, comments.WithLogger(logger.Named("comments")))
	if err != nil {
		return nil, fmt.Errorf("opening comments: %w", err)
	}
	ix, err := gpa.Load(dir, gpa.WithLogger(logger.Named("gpa")))
	if err != nil {
		return nil, fmt.Errorf("opening GPA index: %w", err)
	}

	return &Corpus{Dir: dir, Catalog: cat, Comments: cs, Gpa: ix}, nil
}

// Suggest runs a name search and returns the matches ordered by descending
// heat. When nothing matches it returns a single placeholder row (see
// types.NoMatchResult) so the result is never empty.
func (c *Corpus) Suggest(part string) []types.SearchResult {
	return Suggestions(c.Catalog.FindByNamePart(part))
}

// Suggestions ranks profiles by descending heat, keeping load order among
// equal heat, and projects them to search results. An empty input yields
// the placeholder row.
func Suggestions(profiles []types.InstructorProfile) []types.SearchResult {
	if len(profiles) == 0 {
		return []types.SearchResult{types.NoMatchResult()}
	}

	ranked := make([]types.InstructorProfile, len(profiles))
	copy(ranked, profiles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Heat > ranked[j].Heat
	})

	results := make([]types.SearchResult, len(ranked))
	for i, p := range ranked {
		results[i] = types.ResultFor(p)
	}
	return results
}

// Page is everything shown for one instructor.
type Page struct {
	Profile  types.InstructorProfile `json:"profile" yaml:"profile"`
	Courses  []types.CourseGpaRecord `json:"courses" yaml:"courses"`
	Comments []types.Comment         `json:"comments" yaml:"comments"`
}

// ProfilePage gathers the profile with the given id, its comments, and the
// courses recorded under the profile's name.
func (c *Corpus) ProfilePage(id int) (Page, error) {
	p, ok := c.Catalog.FindByID(id)
	if !ok {
		return Page{}, fmt.Errorf("%w: id %d", ErrProfileNotFound, id)
	}

	cs, err := c.Comments.ByInstructorID(strconv.Itoa(id))
	if err != nil {
		return Page{}, fmt.Errorf("reading comments for %d: %w", id, err)
	}

	return Page{
		Profile:  p,
		Courses:  c.Gpa.CoursesByInstructor(p.Name),
		Comments: cs,
	}, nil
}

// CourseInstructors lists every instructor's statistics for course.
func (c *Corpus) CourseInstructors(course string) []types.CourseGpaRecord {
	return c.Gpa.InstructorsByCourse(course)
}

// ResolveInstructor returns the first profile, in load order, whose name
// contains name. It links a GPA record's teacher name back to a profile.
func (c *Corpus) ResolveInstructor(name string) (types.InstructorProfile, bool) {
	matches := c.Catalog.FindByNamePart(name)
	if len(matches) == 0 {
		return types.InstructorProfile{}, false
	}
	return matches[0], true
}
