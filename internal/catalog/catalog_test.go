// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/bettercls/internal/datadir"
	"github.com/pdiddy/bettercls/pkg/types"
)

const header = "id,name,department,heat,raterCount,rating,pinyin,abbreviation"

// --- test helpers ---

func writeTeachers(t *testing.T, rows ...string) string {
	t.Helper()
	dir := t.TempDir()
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, datadir.TeachersFile), []byte(content), 0o644))
	return dir
}

func loadRows(t *testing.T, rows ...string) *Catalog {
	t.Helper()
	c, err := Load(writeTeachers(t, rows...))
	require.NoError(t, err)
	return c
}

func sampleRows() []string {
	return []string{
		"1,Alice,CS,100,50,4.5,alice,A",
		"2,Malice Bell,Math,300,10,3.9,malicebell,MB",
		"3,Bob,cs,50,0,0,bob,B",
		`4,"Carol, Jr.",Physics,10,2,4.0,carol,C`,
	}
}

// --- load tests ---

func TestLoadSingleRow(t *testing.T) {
	c := loadRows(t, "1,Alice,CS,100,50,4.5,alice,A")

	p, ok := c.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, types.InstructorProfile{
		ID: 1, Name: "Alice", Department: "CS", Heat: 100, RaterCount: 50,
		Rating: 4.5, Pinyin: "alice", PinyinAbbreviation: "A",
	}, p)

	assert.Equal(t, []types.InstructorProfile{p}, c.FindByNamePart("lic"))
	assert.Empty(t, c.FindByNamePart("xyz"))
}

func TestLoadQuotedName(t *testing.T) {
	c := loadRows(t, sampleRows()...)
	p, ok := c.FindByID(4)
	require.True(t, ok)
	assert.Equal(t, "Carol, Jr.", p.Name)
	assert.Equal(t, "Physics", p.Department)
}

func TestLoadSkipsBadRows(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := writeTeachers(t,
		"1,Alice,CS,100,50,4.5,alice,A",
		"2,Bob,Math,20,5,3.0,bob,B",
		"3,Short,Row,1,2",
		"4,BadHeat,CS,hot,5,3.0,bad,B",
		"5,BadRating,CS,1,5,great,bad,B",
		"",
		"6,Dan,EE,7,1,2.5,dan,D",
		"1,Dup,CS,1,1,1,dup,D",
	)

	c, err := Load(dir, WithLogger(zap.New(core)))
	require.NoError(t, err)

	var ids []int
	for _, p := range c.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 6}, ids)
	assert.Equal(t, 4, logs.Len(), "one warning per skipped row")

	first, _ := c.FindByID(1)
	assert.Equal(t, "Alice", first.Name, "first occurrence of an id wins")
}

func TestLoadToleratesSurroundingWhitespaceInNumbers(t *testing.T) {
	c := loadRows(t, "7, Eve ,Bio, 12 , 3 , 4.25 ,eve,E")
	p, ok := c.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, " Eve ", p.Name, "text fields are not trimmed")
	assert.Equal(t, 12, p.Heat)
	assert.Equal(t, 3, p.RaterCount)
	assert.InDelta(t, 4.25, p.Rating, 1e-9)
}

func TestLoadExtraFieldsAccepted(t *testing.T) {
	c := loadRows(t, "8,Finn,CS,1,1,1.0,finn,F,extra,columns")
	_, ok := c.FindByID(8)
	assert.True(t, ok)
}

func TestLoadHeaderOnly(t *testing.T) {
	c, err := Load(writeTeachers(t))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	_, ok := c.FindByID(1)
	assert.False(t, ok)
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		dir     func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing directory",
			dir:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
			wantErr: datadir.ErrDirNotFound,
		},
		{
			name:    "missing teachers.csv",
			dir:     func(t *testing.T) string { return t.TempDir() },
			wantErr: datadir.ErrFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.dir(t))
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// --- query tests ---

func TestFindByNamePart(t *testing.T) {
	c := loadRows(t, sampleRows()...)

	tests := []struct {
		name    string
		part    string
		wantIDs []int
	}{
		{"empty input", "", nil},
		{"whitespace input", "  \t", nil},
		{"substring in load order", "lic", []int{1, 2}},
		{"case-insensitive", "ALICE", []int{1, 2}},
		{"punctuation", ", Jr", []int{4}},
		{"no match", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FindByNamePart(tt.part)
			require.NotNil(t, got)
			var ids []int
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFindByPinyin(t *testing.T) {
	c := loadRows(t, sampleRows()...)

	var ids []int
	for _, p := range c.FindByPinyin("mb") {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2}, ids)

	ids = nil
	for _, p := range c.FindByPinyin("ALICE") {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2}, ids)

	assert.Empty(t, c.FindByPinyin(" "))
}

func TestFindByID(t *testing.T) {
	c := loadRows(t, sampleRows()...)

	p, ok := c.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, "Bob", p.Name)

	_, ok = c.FindByID(99)
	assert.False(t, ok)
	_, ok = c.FindByID(0)
	assert.False(t, ok)
}

func TestFindByDepartment(t *testing.T) {
	c := loadRows(t, sampleRows()...)

	var names []string
	for _, p := range c.FindByDepartment("CS") {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	assert.Empty(t, c.FindByDepartment("C"), "department match is exact")
}

func TestAllReturnsCopy(t *testing.T) {
	c := loadRows(t, sampleRows()...)

	all := c.All()
	require.Len(t, all, 4)
	all[0].Name = "mutated"

	again := c.All()
	assert.Len(t, again, 4)
	assert.Equal(t, "Alice", again[0].Name)
	p, _ := c.FindByID(1)
	assert.Equal(t, "Alice", p.Name)
}

func TestQueriesAreIdempotent(t *testing.T) {
	c := loadRows(t, sampleRows()...)
	assert.Equal(t, c.FindByNamePart("a"), c.FindByNamePart("a"))
	assert.Equal(t, c.FindByDepartment("cs"), c.FindByDepartment("cs"))
	assert.Equal(t, c.All(), c.All())
}
