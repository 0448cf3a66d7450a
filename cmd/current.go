package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/view"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "List all currently running activities",
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	var running []activity.Activity
	for _, a := range l.Running() {
		running = append(running, *a)
	}
	view.Running(os.Stdout, running, time.Now())
	return nil
}
