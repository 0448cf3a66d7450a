package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/view"
)

var (
	projectsCurrent  bool
	projectsNoQuotes bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().BoolVarP(&projectsCurrent, "current", "c", false, "list projects with running activities only")
	projectsCmd.Flags().BoolVarP(&projectsNoQuotes, "no-quotes", "n", false, "print project names without quotes")
}

func runProjects(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	names := report.Projects(l.Snapshot(), projectsCurrent)
	view.Projects(os.Stdout, names, projectsNoQuotes)
	return nil
}
