package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/track"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel all currently running activities",
	Long:  `Remove all running activities from the log as if they were never started.`,
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func runCancel(cmd *cobra.Command, args []string) error {
	l, path, err := loadLog()
	if err != nil {
		return err
	}

	removed := track.Cancel(l)
	if len(removed) == 0 {
		fmt.Println("no activity is currently running, nothing to cancel")
		return nil
	}

	if err := store.Save(l, path); err != nil {
		return err
	}
	for _, a := range removed {
		fmt.Printf("canceled %q / %q started at %s\n",
			a.Project, a.Description, a.Start.Format(store.FormatTime))
	}
	return nil
}
