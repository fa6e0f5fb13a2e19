// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bettercls/pkg/types"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [instructor-name]",
	Short: "List the GPA statistics of an instructor's courses",
	Long:  `Courses prints every course recorded in gpa.json under the given instructor name, ignoring case.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus(cmd)
		if err != nil {
			return err
		}
		rows := c.Gpa.CoursesByInstructor(strings.Join(args, " "))
		return render(cmd.OutOrStdout(), cfg.Format, rows, func(w io.Writer) {
			formatCourses(w, rows)
		})
	},
}

// courseRow pairs a GPA record with the profile id its teacher name
// resolves to (0 when unresolved).
type courseRow struct {
	types.CourseGpaRecord `yaml:",inline"`
	InstructorID          int `json:"instructor_id" yaml:"instructor_id"`
}

var courseCmd = &cobra.Command{
	Use:   "course [course-name]",
	Short: "Compare every instructor who taught a course",
	Long: `Course prints, for every instructor in gpa.json, the statistics of the
course with the given name, ignoring case. Each row carries the id of the
first instructor profile whose name contains the GPA record's teacher name,
so it can be passed to "bettercls profile".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus(cmd)
		if err != nil {
			return err
		}

		records := c.CourseInstructors(strings.Join(args, " "))
		rows := make([]courseRow, len(records))
		for i, r := range records {
			rows[i].CourseGpaRecord = r
			if p, ok := c.ResolveInstructor(r.TeacherName); ok {
				rows[i].InstructorID = p.ID
			}
		}

		return render(cmd.OutOrStdout(), cfg.Format, rows, func(w io.Writer) {
			formatCourseRows(w, rows)
		})
	},
}

func formatCourses(w io.Writer, rows []types.CourseGpaRecord) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}
	fmt.Fprintf(w, "%-32s  %-16s  %7s  %8s  %7s\n", "Course", "Instructor", "Avg GPA", "Students", "Std Dev")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(w, "%-32s  %-16s  %7.2f  %8s  %7.2f\n",
			truncate(r.CourseName, 32), truncate(r.TeacherName, 16), r.AverageGpa, r.StudentCount, r.StandardDeviation)
	}
}

func formatCourseRows(w io.Writer, rows []courseRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}
	fmt.Fprintf(w, "%-16s  %-8s  %-32s  %7s  %8s  %7s\n", "Instructor", "ID", "Course", "Avg GPA", "Students", "Std Dev")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range rows {
		id := "-"
		if r.InstructorID != 0 {
			id = fmt.Sprint(r.InstructorID)
		}
		fmt.Fprintf(w, "%-16s  %-8s  %-32s  %7.2f  %8s  %7.2f\n",
			truncate(r.TeacherName, 16), id, truncate(r.CourseName, 32), r.AverageGpa, r.StudentCount, r.StandardDeviation)
	}
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(courseCmd)
}
