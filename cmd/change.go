package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/track"
)

var (
	changeProject     string
	changeDescription string
	changeTime        string
)

var changeCmd = &cobra.Command{
	Use:   "change",
	Short: "Change the current activity",
	Long: `Change the project, description, or start time of the most recently
started running activity. Only the supplied flags are changed.`,
	Args: cobra.NoArgs,
	RunE: runChange,
}

func init() {
	changeCmd.Flags().StringVarP(&changeProject, "project", "p", "", "the new project of the activity")
	changeCmd.Flags().StringVarP(&changeDescription, "description", "d", "", "the new description of the activity")
	changeCmd.Flags().StringVarP(&changeTime, "time", "t", "", "the new start time of the activity (HH:MM)")
}

func runChange(cmd *cobra.Command, args []string) error {
	var at *time.Time
	if cmd.Flags().Changed("time") {
		t, err := parseTimeFlag(changeTime)
		if err != nil {
			return err
		}
		at = &t
	}

	l, path, err := loadLog()
	if err != nil {
		return err
	}

	a, err := track.Change(l,
		optString(cmd, "project", &changeProject),
		optString(cmd, "description", &changeDescription),
		at)
	if err != nil {
		return err
	}

	if err := store.Save(l, path); err != nil {
		return err
	}
	fmt.Printf("changed to %q / %q started at %s\n",
		a.Project, a.Description, a.Start.Format(store.FormatTime))
	return nil
}
