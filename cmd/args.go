package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/query"
	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// parseTimeFlag turns "HH:MM" into a timestamp on today's date, the only
// way commands accept times. An empty value means "now".
func parseTimeFlag(s string) (time.Time, error) {
	now := time.Now()
	if s == "" {
		return now.Truncate(time.Minute), nil
	}
	t, err := time.Parse(store.FormatTime, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(store.FormatDate, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

// parseRound parses a rounding granularity token like "15m" or "2h".
func parseRound(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q, expected e.g. 15m or 4h", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid duration %q, expected e.g. 15m or 4h", s)
	}
	switch s[len(s)-1] {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid duration unit %q, expected 'm' or 'h'", s[len(s)-1:])
	}
}

// optString returns the flag value when it was set on the command line, nil
// otherwise, so commands can distinguish "clear to empty" from "untouched".
func optString(cmd *cobra.Command, name string, value *string) *string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

// filterFlags is the common query surface of list and report: date bounds,
// mutually exclusive date presets, a project, and a rounding granularity.
type filterFlags struct {
	from        string
	to          string
	date        string
	today       bool
	yesterday   bool
	currentWeek bool
	lastWeek    bool
	project     string
	round       string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.from, "from", "", "begin of date range (inclusive)")
	cmd.Flags().StringVar(&ff.to, "to", "", "end of date range (inclusive)")
	cmd.Flags().StringVarP(&ff.date, "date", "d", "", "activities of a certain date only")
	cmd.Flags().BoolVar(&ff.today, "today", false, "activities of the current day")
	cmd.Flags().BoolVar(&ff.yesterday, "yesterday", false, "activities of yesterday")
	cmd.Flags().BoolVar(&ff.currentWeek, "current-week", false, "activities of the current week")
	cmd.Flags().BoolVar(&ff.lastWeek, "last-week", false, "activities of the last week")
	cmd.Flags().StringVarP(&ff.project, "project", "p", "", "activities of this project only")
	cmd.Flags().StringVar(&ff.round, "round", "",
		"round start and end times to this granularity, e.g. 15m or 4h")

	cmd.MarkFlagsMutuallyExclusive("from", "date", "today", "yesterday", "current-week", "last-week")
	cmd.MarkFlagsMutuallyExclusive("to", "date", "today", "yesterday", "current-week", "last-week")
}

// build resolves the flags, including the date presets, into a concrete
// filter and processor pipeline. Presets are translated here; the query
// layer never derives "today" itself.
func (ff *filterFlags) build() (query.Filter, query.Pipeline, error) {
	var f query.Filter
	var err error

	if f.From, err = parseDateFlag(ff.from); err != nil {
		return f, nil, err
	}
	if f.To, err = parseDateFlag(ff.to); err != nil {
		return f, nil, err
	}
	if f.Date, err = parseDateFlag(ff.date); err != nil {
		return f, nil, err
	}
	f.Project = ff.project

	now := timeutil.DateOf(time.Now())
	switch {
	case ff.today:
		f.Date = &now
	case ff.yesterday:
		yesterday := now.AddDate(0, 0, -1)
		f.Date = &yesterday
	case ff.currentWeek:
		monday, sunday := timeutil.WeekRange(now)
		f.From, f.To = &monday, &sunday
	case ff.lastWeek:
		monday, sunday := timeutil.WeekRange(now.AddDate(0, 0, -7))
		f.From, f.To = &monday, &sunday
	}

	round, err := parseRound(ff.round)
	if err != nil {
		return f, nil, err
	}
	var pipeline query.Pipeline
	if round > 0 {
		pipeline = append(pipeline, query.Round{Granularity: round})
	}
	return f, pipeline, nil
}
