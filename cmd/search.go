package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/view"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search for existing projects and descriptions",
	Long: `List the distinct (project, description) pairs whose project or
description contains the search term, case-insensitively. Without a term,
every pair is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	l, _, err := loadLog()
	if err != nil {
		return err
	}

	pairs := report.Search(l.Snapshot(), term)
	view.Pairs(os.Stdout, pairs, false)
	return nil
}
