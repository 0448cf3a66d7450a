// Package report derives display data from a filtered, processed activity
// sequence: per-project duration totals, the three status windows, project
// and search listings, and structural sanity findings.
package report

import (
	"sort"
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/query"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// Row is one project's total in a report.
type Row struct {
	Project string
	Total   time.Duration
	Running bool // a still-running activity contributes to the total
}

// ByProject sums the duration of each project over acts. Running activities
// count up to now and mark their row as running. Rows are sorted by project
// name; the sort is stable over first-appearance order. The second result is
// the grand total, always equal to the sum of the rows.
func ByProject(acts []activity.Activity, now time.Time) ([]Row, time.Duration) {
	index := make(map[string]int)
	var rows []Row
	var total time.Duration

	for _, a := range acts {
		i, ok := index[a.Project]
		if !ok {
			i = len(rows)
			index[a.Project] = i
			rows = append(rows, Row{Project: a.Project})
		}
		d := a.Duration(now)
		rows[i].Total += d
		rows[i].Running = rows[i].Running || a.Running()
		total += d
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Project < rows[j].Project
	})
	return rows, total
}

// Status is the fixed three-window report: today, the current Monday–Sunday
// week, and the current month, each aggregated independently, plus the
// currently running activities.
type Status struct {
	Today      []Row
	TodayTotal time.Duration
	Week       []Row
	WeekTotal  time.Duration
	Month      []Row
	MonthTotal time.Duration
	Running    []activity.Activity
}

// BuildStatus computes the status windows relative to now over acts, which
// must be in recording order. A non-empty project restricts every window.
func BuildStatus(acts []activity.Activity, project string, now time.Time) Status {
	var st Status

	today := timeutil.DateOf(now)
	st.Today, st.TodayTotal = window(acts, project, today, today, now)

	monday, sunday := timeutil.WeekRange(now)
	st.Week, st.WeekTotal = window(acts, project, monday, sunday, now)

	first, last := timeutil.MonthRange(now)
	st.Month, st.MonthTotal = window(acts, project, first, last, now)

	for _, a := range acts {
		if a.Running() && (project == "" || a.Project == project) {
			st.Running = append(st.Running, a)
		}
	}
	return st
}

func window(acts []activity.Activity, project string, from, to, now time.Time) ([]Row, time.Duration) {
	f := query.Filter{From: &from, To: &to, Project: project}
	return ByProject(f.Apply(acts), now)
}

// Projects returns each distinct project name once, sorted. With runningOnly
// set, only projects with a currently running activity are included.
func Projects(acts []activity.Activity, runningOnly bool) []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range acts {
		if runningOnly && !a.Running() {
			continue
		}
		if seen[a.Project] {
			continue
		}
		seen[a.Project] = true
		names = append(names, a.Project)
	}
	sort.Strings(names)
	return names
}

// Search returns the distinct (project, description) pairs whose project or
// description contains term, case-insensitively, most recent first. The
// empty term matches every pair.
func Search(acts []activity.Activity, term string) []activity.Pair {
	var matched []activity.Activity
	for _, a := range acts {
		if a.Matches(term) {
			matched = append(matched, a)
		}
	}
	return activity.DistinctPairs(matched)
}
