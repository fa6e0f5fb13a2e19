// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bettercls/internal/corpus"
	"github.com/pdiddy/bettercls/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Find instructors whose name contains the given text",
	Long: `Search matches the given text against instructor names, ignoring case,
and lists the matches by descending popularity. With --pinyin the text is
matched against the romanized name and its abbreviation instead.

When nothing matches, a single "no match" row with id 0 is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := openCorpus(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	usePinyin, _ := cmd.Flags().GetBool("pinyin")
	limit, _ := cmd.Flags().GetInt("limit")

	var results []types.SearchResult
	if usePinyin {
		results = corpus.Suggestions(c.Catalog.FindByPinyin(query))
	} else {
		results = c.Suggest(query)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return render(cmd.OutOrStdout(), cfg.Format, results, func(w io.Writer) {
		formatSearchResults(w, results)
	})
}

func formatSearchResults(w io.Writer, results []types.SearchResult) {
	fmt.Fprintf(w, "%-4s  %-8s  %-24s  %s\n", "Rank", "ID", "Name", "Department")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-8d  %-24s  %s\n", i+1, r.ID, truncate(r.Name, 24), r.Department)
	}
}

var departmentCmd = &cobra.Command{
	Use:   "department [name]",
	Short: "List the instructors of a department",
	Long:  `Department lists every instructor whose department equals the given name, ignoring case.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus(cmd)
		if err != nil {
			return err
		}
		profiles := c.Catalog.FindByDepartment(strings.Join(args, " "))
		return render(cmd.OutOrStdout(), cfg.Format, profiles, func(w io.Writer) {
			formatProfiles(w, profiles)
		})
	},
}

func formatProfiles(w io.Writer, profiles []types.InstructorProfile) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No instructors found.")
		return
	}
	fmt.Fprintf(w, "%-8s  %-24s  %-20s  %6s  %6s  %s\n", "ID", "Name", "Department", "Heat", "Rating", "Raters")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for _, p := range profiles {
		fmt.Fprintf(w, "%-8d  %-24s  %-20s  %6d  %6.2f  %d\n",
			p.ID, truncate(p.Name, 24), truncate(p.Department, 20), p.Heat, p.Rating, p.RaterCount)
	}
	fmt.Fprintf(w, "\n%d instructors\n", len(profiles))
}

func init() {
	searchCmd.Flags().Bool("pinyin", false, "match romanized names and abbreviations")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = all)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(departmentCmd)
}
