package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/view"
)

var sanityCmd = &cobra.Command{
	Use:   "sanity",
	Short: "Check the plausibility of the tracked activities",
	Long: `Look for records that parse but look wrong: intervals ending before
they start, overlapping activities, and identical activities running at the
same time. Findings are informational; nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runSanity,
}

func runSanity(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	view.Findings(os.Stdout, report.SanityCheck(l, time.Now()))
	return nil
}
