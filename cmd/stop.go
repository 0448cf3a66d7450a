package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/timeutil"
	"github.com/tiliamara/worklog/internal/track"
)

var stopTime string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop all currently running activities",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func init() {
	stopCmd.Flags().StringVarP(&stopTime, "time", "t", "", "stop at this time instead of now (HH:MM)")
}

func runStop(cmd *cobra.Command, args []string) error {
	at, err := parseTimeFlag(stopTime)
	if err != nil {
		return err
	}

	l, path, err := loadLog()
	if err != nil {
		return err
	}

	stopped, err := track.Stop(l, at)
	if err != nil {
		return err
	}
	if len(stopped) == 0 {
		fmt.Println("no activity is currently running, nothing to stop")
		return nil
	}

	if err := store.Save(l, path); err != nil {
		return err
	}
	for _, a := range stopped {
		fmt.Printf("stopped %q / %q after %s\n",
			a.Project, a.Description, timeutil.FormatDuration(a.Duration(at)))
	}
	return nil
}
