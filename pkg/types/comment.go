// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Comment is one row of a comment_*.csv shard.
type Comment struct {
	CommentID int64 `json:"comment_id" yaml:"comment_id"`

	// InstructorID refers to InstructorProfile.ID. It is not validated
	// against the catalog.
	InstructorID int64 `json:"instructor_id" yaml:"instructor_id"`

	// InstructorName is a denormalized copy of the instructor's name.
	InstructorName string `json:"instructor_name" yaml:"instructor_name"`

	PublishTime time.Time `json:"publish_time" yaml:"publish_time"`

	LikeMinusDislike int `json:"like_minus_dislike" yaml:"like_minus_dislike"`
	LikeCount        int `json:"like_count" yaml:"like_count"`
	DislikeCount     int `json:"dislike_count" yaml:"dislike_count"`

	// Content is the comment text with escaped newlines decoded.
	Content string `json:"content" yaml:"content"`
}

func (c Comment) String() string {
	return fmt.Sprintf("%s (%s): %s", c.InstructorName, c.PublishTime.Format("2006-01-02 15:04:05"), c.Content)
}
