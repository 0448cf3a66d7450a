package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/store"
)

var (
	exportFilter filterFlags
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export activities to stdout",
	Long:  `Write the filtered activities to stdout as CSV or JSON, for spreadsheets and scripts.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, json")
}

// exportRow is the flat serialization of one activity.
type exportRow struct {
	Date            string `json:"date"`
	Start           string `json:"start"`
	End             string `json:"end,omitempty"`
	DurationMinutes int64  `json:"duration_minutes"`
	Project         string `json:"project"`
	Description     string `json:"description"`
}

func runExport(cmd *cobra.Command, args []string) error {
	filter, pipeline, err := exportFilter.build()
	if err != nil {
		return err
	}

	l, _, err := loadLog()
	if err != nil {
		return err
	}

	now := time.Now()
	acts := pipeline.Process(filter.Apply(l.Snapshot()))
	rows := make([]exportRow, 0, len(acts))
	for _, a := range acts {
		rows = append(rows, exportActivity(a, now))
	}

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "csv":
		w := csv.NewWriter(os.Stdout)
		_ = w.Write([]string{"date", "start", "end", "duration_minutes", "project", "description"})
		for _, r := range rows {
			_ = w.Write([]string{r.Date, r.Start, r.End,
				strconv.FormatInt(r.DurationMinutes, 10), r.Project, r.Description})
		}
		w.Flush()
		return w.Error()
	default:
		return fmt.Errorf("unknown export format %q, expected csv or json", exportFormat)
	}
}

func exportActivity(a activity.Activity, now time.Time) exportRow {
	r := exportRow{
		Date:            a.Start.Format(store.FormatDate),
		Start:           a.Start.Format(store.FormatTime),
		DurationMinutes: int64(a.Duration(now) / time.Minute),
		Project:         a.Project,
		Description:     a.Description,
	}
	if a.End != nil {
		r.End = a.End.Format(store.FormatTime)
	}
	return r
}
