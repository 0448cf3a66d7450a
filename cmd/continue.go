package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/track"
)

var (
	continueProject     string
	continueDescription string
	continueTime        string
)

var continueCmd = &cobra.Command{
	Use:   "continue [number]",
	Short: "Continue a previous activity",
	Long: `Continue the most recent activity, or the numbered one from
` + "`worklog last`" + `. Running activities are stopped at the continue time first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContinue,
}

func init() {
	continueCmd.Flags().StringVarP(&continueProject, "project", "p", "", "override the project of the continued activity")
	continueCmd.Flags().StringVarP(&continueDescription, "description", "d", "", "override the description of the continued activity")
	continueCmd.Flags().StringVarP(&continueTime, "time", "t", "", "continue at this time instead of now (HH:MM)")
}

func runContinue(cmd *cobra.Command, args []string) error {
	index := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid activity number %q", args[0])
		}
		index = n
	}

	at, err := parseTimeFlag(continueTime)
	if err != nil {
		return err
	}

	l, path, err := loadLog()
	if err != nil {
		return err
	}

	a, err := track.Continue(l,
		optString(cmd, "project", &continueProject),
		optString(cmd, "description", &continueDescription),
		index, at)
	if err != nil {
		return err
	}

	if err := store.Save(l, path); err != nil {
		return err
	}
	fmt.Printf("continued %q / %q at %s\n", a.Project, a.Description, a.Start.Format(store.FormatTime))
	return nil
}
