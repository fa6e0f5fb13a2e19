// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package comments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/bettercls/internal/datadir"
)

const header = "commentId,instructorId,instructorName,publishTime,likeMinusDislike,likeCount,dislikeCount,content"

func writeShard(t *testing.T, dir, name string, rows ...string) {
	t.Helper()
	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func openStore(t *testing.T, dir string, opts ...Option) *Store {
	t.Helper()
	s, err := Open(dir, opts...)
	require.NoError(t, err)
	return s
}

func commentIDs(t *testing.T, s *Store, id string) []int64 {
	t.Helper()
	got, err := s.ByInstructorID(id)
	require.NoError(t, err)
	var ids []int64
	for _, c := range got {
		ids = append(ids, c.CommentID)
	}
	return ids
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	_, err = Open(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, datadir.ErrDirNotFound)
}

func TestByInstructorIDParsesRow(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "comment_1.csv",
		`10,1,Alice,2023-05-06 07:08:09,3,5,2,"line1\nline2, with comma"`,
	)

	got, err := openStore(t, dir).ByInstructorID("1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, int64(10), c.CommentID)
	assert.Equal(t, int64(1), c.InstructorID)
	assert.Equal(t, "Alice", c.InstructorName)
	assert.Equal(t, time.Date(2023, 5, 6, 7, 8, 9, 0, time.Local), c.PublishTime)
	assert.Equal(t, 3, c.LikeMinusDislike)
	assert.Equal(t, 5, c.LikeCount)
	assert.Equal(t, 2, c.DislikeCount)
	assert.Equal(t, "line1\nline2, with comma", c.Content)
	assert.Len(t, strings.Split(c.Content, "\n"), 2)
}

func TestByInstructorIDFiltersByTextEquality(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "comment_1.csv",
		"1,1,A,2023-01-01 00:00:00,0,0,0,one",
		"2,01,A,2023-01-01 00:00:00,0,0,0,leading zero",
		"3,11,B,2023-01-01 00:00:00,0,0,0,eleven",
		"4, 1,A,2023-01-01 00:00:00,0,0,0,padded",
		"5,1,A,2023-01-01 00:00:00,0,0,0,another",
	)
	s := openStore(t, dir)

	assert.Equal(t, []int64{1, 5}, commentIDs(t, s, "1"))
	assert.Equal(t, []int64{2}, commentIDs(t, s, "01"))
	assert.Equal(t, []int64{3}, commentIDs(t, s, "11"))
	assert.Empty(t, commentIDs(t, s, "2"))
}

func TestByInstructorIDOrdersByShardThenLine(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "comment_b.csv",
		"30,7,X,2023-01-01 00:00:00,0,0,0,b1",
		"31,7,X,2023-01-01 00:00:00,0,0,0,b2",
	)
	writeShard(t, dir, "comment_a.csv",
		"20,7,X,2023-01-01 00:00:00,0,0,0,a1",
		"20,7,X,2023-01-01 00:00:00,0,0,0,a1 again",
	)
	writeShard(t, dir, "comments_ignored.csv",
		"99,7,X,2023-01-01 00:00:00,0,0,0,not a shard",
	)

	assert.Equal(t, []int64{20, 20, 30, 31}, commentIDs(t, openStore(t, dir), "7"))
}

func TestByInstructorIDSkipsBadRows(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()
	writeShard(t, dir, "comment_1.csv",
		"1,5,A,2023-01-01 00:00:00,0,0,0,good",
		"2,5,A,short",
		"3,5,A,not a time,0,0,0,bad time",
		"4,5,A,2023-01-01 00:00:00,x,0,0,bad number",
		"5,6,B,not a time,0,0,0,other instructor ignored silently",
		"6,5,A,2023/1/2 3:04:05,1,1,0,slash layout",
	)

	s := openStore(t, dir, WithLogger(zap.New(core)))
	assert.Equal(t, []int64{1, 6}, commentIDs(t, s, "5"))
	assert.Equal(t, 3, logs.Len())
}

func TestByInstructorIDSkipsUnreadableShard(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()
	writeShard(t, dir, "comment_1.csv", "1,5,A,2023-01-01 00:00:00,0,0,0,first")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.csv"), filepath.Join(dir, "comment_2.csv")))
	writeShard(t, dir, "comment_3.csv", "3,5,A,2023-01-01 00:00:00,0,0,0,third")

	s := openStore(t, dir, WithLogger(zap.New(core)))
	assert.Equal(t, []int64{1, 3}, commentIDs(t, s, "5"))

	entries := logs.FilterMessage("skipping comment shard").All()
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "comment_2.csv"), entries[0].ContextMap()["file"])
}

func TestByInstructorIDReflectsCurrentFiles(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir)

	got, err := s.ByInstructorID("1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	writeShard(t, dir, "comment_1.csv", "1,1,A,2023-01-01 00:00:00,0,0,0,new")
	assert.Equal(t, []int64{1}, commentIDs(t, s, "1"))
	assert.Equal(t, commentIDs(t, s, "1"), commentIDs(t, s, "1"))
}

func TestByInstructorIDDirectoryRemoved(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.Mkdir(dir, 0o755))
	s := openStore(t, dir)
	require.NoError(t, os.Remove(dir))

	_, err := s.ByInstructorID("1")
	assert.Error(t, err)
}

func TestParsePublishTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-03 04:05:06", time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)},
		{"2024-02-03T04:05:06", time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)},
		{"2024/2/3 4:05:06", time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)},
		{"2024/02/03 04:05", time.Date(2024, 2, 3, 4, 5, 0, 0, time.Local)},
		{"2024-02-03", time.Date(2024, 2, 3, 0, 0, 0, 0, time.Local)},
		{" 2024-02-03 ", time.Date(2024, 2, 3, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePublishTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	got, err := parsePublishTime("2024-02-03T04:05:06Z")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC).Equal(got))

	_, err = parsePublishTime("yesterday")
	assert.Error(t, err)
}

func TestDecodeContent(t *testing.T) {
	assert.Equal(t, "a\nb\nc", DecodeContent(`a\nb\nc`))
	assert.Equal(t, `a\tb`, DecodeContent(`a\tb`))
	assert.Equal(t, "no escapes", DecodeContent("no escapes"))
}
