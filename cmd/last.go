package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/view"
)

var lastNumber int

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Display projects and descriptions of recent activities",
	Long: `Display the most recent distinct (project, description) pairs. The
number in front of each row is the argument ` + "`worklog continue`" + ` accepts.`,
	Args: cobra.NoArgs,
	RunE: runLast,
}

func init() {
	lastCmd.Flags().IntVarP(&lastNumber, "number", "n", 10, "maximum number of activities to display")
}

func runLast(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	pairs := activity.DistinctPairs(l.Snapshot())
	if lastNumber > 0 && len(pairs) > lastNumber {
		pairs = pairs[:lastNumber]
	}
	view.Pairs(os.Stdout, pairs, true)
	return nil
}
