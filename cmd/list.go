package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/view"
)

var (
	listFilter     filterFlags
	listNoGrouping bool
	listNumber     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent activities",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listFilter.register(listCmd)
	listCmd.Flags().BoolVar(&listNoGrouping, "no-grouping", false, "do not group activities by date")
	listCmd.Flags().IntVarP(&listNumber, "number", "n", 0, "maximum number of activities to display")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, pipeline, err := listFilter.build()
	if err != nil {
		return err
	}
	filter.Count = listNumber

	l, _, err := loadLog()
	if err != nil {
		return err
	}

	acts := pipeline.Process(filter.Apply(l.Snapshot()))
	grouped := !listNoGrouping && filter.Date == nil
	view.List(os.Stdout, acts, grouped, time.Now())
	return nil
}
