package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/view"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the log file and report parsing errors",
	Long: `Report every malformed line of the log file at once. Malformed
lines are skipped by the other commands but preserved on rewrite; fix them
with ` + "`worklog edit`" + `.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	l, _, err := loadLog()
	if err != nil {
		return err
	}

	view.ParseErrors(os.Stdout, l.Errors())
	return nil
}
