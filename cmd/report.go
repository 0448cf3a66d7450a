package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/view"
)

var reportFilter filterFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report the duration of tracked activities per project",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportFilter.register(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	filter, pipeline, err := reportFilter.build()
	if err != nil {
		return err
	}

	l, _, err := loadLog()
	if err != nil {
		return err
	}

	now := time.Now()
	acts := pipeline.Process(filter.Apply(l.Snapshot()))
	rows, total := report.ByProject(acts, now)
	view.Report(os.Stdout, rows, total)
	return nil
}
