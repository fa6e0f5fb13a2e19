// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records loaded from an instructor data
// source: profiles from teachers.csv, comments from comment_*.csv shards, and
// course statistics from gpa.json.
package types

import "fmt"

// InstructorProfile is one row of teachers.csv.
type InstructorProfile struct {
	// ID is the primary key. Unique across a catalog.
	ID int `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Department is the college or department the instructor belongs to.
	Department string `json:"department" yaml:"department"`

	// Heat is the popularity score used to rank name search results.
	Heat int `json:"heat" yaml:"heat"`

	// RaterCount is the number of people who rated the instructor.
	RaterCount int `json:"rater_count" yaml:"rater_count"`

	// Rating is the average rating, typically between 0 and 5.
	Rating float64 `json:"rating" yaml:"rating"`

	// Pinyin is the romanized name.
	Pinyin string `json:"pinyin" yaml:"pinyin"`

	// PinyinAbbreviation is the initials of the romanized name.
	PinyinAbbreviation string `json:"pinyin_abbreviation" yaml:"pinyin_abbreviation"`
}

func (p InstructorProfile) String() string {
	return fmt.Sprintf("%s (%s) - rating: %g (from %d raters)", p.Name, p.Department, p.Rating, p.RaterCount)
}

// SearchResult is the projection returned by name search. It leaves out the
// ranking and rating fields of InstructorProfile.
type SearchResult struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}

// NoMatch labels the placeholder row shown when a name search finds nothing.
const (
	NoMatchName       = "no match"
	NoMatchDepartment = "none"
)

// NoMatchResult returns the placeholder row (ID 0) that stands in for an
// empty name search.
func NoMatchResult() SearchResult {
	return SearchResult{ID: 0, Name: NoMatchName, Department: NoMatchDepartment}
}

// IsNoMatch reports whether r is the placeholder row.
func (r SearchResult) IsNoMatch() bool {
	return r.ID == 0 && r.Name == NoMatchName
}

// ResultFor projects a profile onto a SearchResult.
func ResultFor(p InstructorProfile) SearchResult {
	return SearchResult{ID: p.ID, Name: p.Name, Department: p.Department}
}
