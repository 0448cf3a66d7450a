package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/track"
)

var (
	startProject     string
	startDescription string
	startTime        string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new activity",
	Long: `Start a new activity for a project. Other running activities keep
running; tracking several activities at once is allowed.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startProject, "project", "p", "", "the project the new activity belongs to")
	startCmd.Flags().StringVarP(&startDescription, "description", "d", "", "the description of the new activity")
	startCmd.Flags().StringVarP(&startTime, "time", "t", "", "start at this time instead of now (HH:MM)")
	_ = startCmd.MarkFlagRequired("project")
	_ = startCmd.MarkFlagRequired("description")
}

func runStart(cmd *cobra.Command, args []string) error {
	at, err := parseTimeFlag(startTime)
	if err != nil {
		return err
	}

	l, path, err := loadLog()
	if err != nil {
		return err
	}

	a := track.Start(l, startProject, startDescription, at)

	if err := store.Save(l, path); err != nil {
		return err
	}
	fmt.Printf("started %q / %q at %s\n", a.Project, a.Description, a.Start.Format(store.FormatTime))
	return nil
}
