package query

import (
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// Filter selects a subset of activities. Zero-valued criteria are skipped;
// the set bounds are applied as a conjunction. Count keeps the most recent
// Count activities of the filtered result, by recording order.
//
// From/To and Date are mutually exclusive at the CLI level; the filter itself
// just applies whatever is set.
type Filter struct {
	From    *time.Time
	To      *time.Time
	Date    *time.Time
	Project string
	Count   int // 0 means unlimited
}

// Apply filters acts, which must be in recording order, and returns the
// matching activities in the same order.
func (f Filter) Apply(acts []activity.Activity) []activity.Activity {
	var out []activity.Activity
	for _, a := range acts {
		if f.matches(&a) {
			out = append(out, a)
		}
	}
	if f.Count > 0 && len(out) > f.Count {
		out = out[len(out)-f.Count:]
	}
	return out
}

func (f Filter) matches(a *activity.Activity) bool {
	date := timeutil.DateOf(a.Start)
	if f.From != nil && date.Before(timeutil.DateOf(*f.From)) {
		return false
	}
	if f.To != nil && date.After(timeutil.DateOf(*f.To)) {
		return false
	}
	if f.Date != nil && !timeutil.SameDay(a.Start, *f.Date) {
		return false
	}
	if f.Project != "" && a.Project != f.Project {
		return false
	}
	return true
}
