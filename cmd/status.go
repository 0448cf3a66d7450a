package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/view"
)

var statusProject string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show time reports for today, the current week, and the current month",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusProject, "project", "p", "", "show the status of this project only")
}

func runStatus(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	now := time.Now()
	st := report.BuildStatus(l.Snapshot(), statusProject, now)
	view.StatusReport(os.Stdout, st, now)
	return nil
}
