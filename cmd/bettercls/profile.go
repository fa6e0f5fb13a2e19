// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bettercls/internal/corpus"
	"github.com/pdiddy/bettercls/pkg/types"
)

// --- profile subcommand ---

var profileCmd = &cobra.Command{
	Use:   "profile [id]",
	Short: "Show an instructor's profile, courses, and comments",
	Long: `Profile prints the instructor with the given id together with the GPA
statistics recorded under the instructor's name and every comment left for
the instructor.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid instructor id %q: %w", args[0], err)
	}

	c, err := openCorpus(cmd)
	if err != nil {
		return err
	}
	page, err := c.ProfilePage(id)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Format, page, func(w io.Writer) {
		formatPage(w, page)
	})
}

func formatPage(w io.Writer, page corpus.Page) {
	p := page.Profile
	fmt.Fprintf(w, "%s  (id %d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "Department: %s\n", p.Department)
	fmt.Fprintf(w, "Rating:     %.2f from %d raters\n", p.Rating, p.RaterCount)
	fmt.Fprintf(w, "Heat:       %d\n", p.Heat)
	if p.Pinyin != "" {
		fmt.Fprintf(w, "Pinyin:     %s (%s)\n", p.Pinyin, p.PinyinAbbreviation)
	}

	fmt.Fprintln(w, "\nCourses")
	formatCourses(w, page.Courses)

	fmt.Fprintln(w, "\nComments")
	formatComments(w, page.Comments)
}

// --- comments subcommand ---

var commentsCmd = &cobra.Command{
	Use:   "comments [instructor-id]",
	Short: "List the comments left for an instructor",
	Long: `Comments scans every comment_*.csv shard in the data directory and prints
the rows whose instructor id column is exactly the given text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus(cmd)
		if err != nil {
			return err
		}
		list, err := c.Comments.ByInstructorID(args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Format, list, func(w io.Writer) {
			formatComments(w, list)
		})
	},
}

func formatComments(w io.Writer, list []types.Comment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No comments found.")
		return
	}
	fmt.Fprintf(w, "%-19s  %5s  %5s  %s\n", "Published", "Likes", "Net", "Content")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, c := range list {
		fmt.Fprintf(w, "%-19s  %5d  %5d  %s\n",
			c.PublishTime.Format("2006-01-02 15:04:05"), c.LikeCount, c.LikeMinusDislike,
			truncate(oneLine(c.Content), 64))
	}
	fmt.Fprintf(w, "\n%d comments\n", len(list))
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(commentsCmd)
}
