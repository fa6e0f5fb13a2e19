// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CourseTuple is a raw [courseName, averageGpa, studentCount, standardDeviation]
// array from gpa.json. Elements keep their decoded JSON types: numbers are
// json.Number, strings are string, null is nil.
type CourseTuple []any

// CourseGpaRecord is a typed view of one CourseTuple.
type CourseGpaRecord struct {
	CourseName string `json:"course_name" yaml:"course_name"`

	// TeacherName is the gpa.json key the tuple was nested under.
	TeacherName string `json:"teacher_name" yaml:"teacher_name"`

	AverageGpa float64 `json:"average_gpa" yaml:"average_gpa"`

	// StudentCount is kept as text because the source holds non-numeric
	// placeholders in this column.
	StudentCount string `json:"student_count" yaml:"student_count"`

	StandardDeviation float64 `json:"standard_deviation" yaml:"standard_deviation"`
}

func (r CourseGpaRecord) String() string {
	return fmt.Sprintf("%s - instructor: %s, average GPA: %.2f, students: %s, std dev: %.2f",
		r.CourseName, r.TeacherName, r.AverageGpa, r.StudentCount, r.StandardDeviation)
}
