package report

import (
	"fmt"
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// Finding is one sanity diagnostic, tied to a log line.
type Finding struct {
	Line    int
	Message string
}

// longRunning is how long an activity may run before sanity flags it; with
// time-only input an activity cannot legitimately span a day.
const longRunning = 24 * time.Hour

// SanityCheck inspects the log for records that parsed (or almost parsed)
// but look wrong: intervals that end before they start, overlapping
// activities, identical (project, description) pairs running at once, and
// activities that have been running unreasonably long. Findings are
// diagnostics, not errors; nothing is rejected or normalized.
func SanityCheck(l *store.Log, now time.Time) []Finding {
	var findings []Finding

	for _, err := range l.Errors() {
		if err.Kind == store.EndBeforeStart {
			findings = append(findings, Finding{Line: err.Line, Message: err.Msg})
		}
	}

	type located struct {
		a    *activity.Activity
		line int
	}
	var acts []located
	for _, d := range l.Days {
		for _, e := range d.Entries {
			if e.Activity != nil {
				acts = append(acts, located{a: e.Activity, line: e.Line})
			}
		}
	}

	// Overlap is only checked between finished intervals; tracking several
	// running activities at once is allowed and would always overlap.
	for i, x := range acts {
		if x.a.Running() {
			continue
		}
		for _, y := range acts[:i] {
			if y.a.Running() {
				continue
			}
			if x.a.Overlaps(y.a, now) {
				findings = append(findings, Finding{
					Line: x.line,
					Message: fmt.Sprintf("overlaps the activity for %q started %s at %s",
						y.a.Project, y.a.Start.Format(store.FormatDate), y.a.Start.Format(store.FormatTime)),
				})
				break
			}
		}
	}

	runningPairs := make(map[activity.Pair]bool)
	for _, x := range acts {
		if !x.a.Running() {
			continue
		}
		p := activity.Pair{Project: x.a.Project, Description: x.a.Description}
		if runningPairs[p] {
			findings = append(findings, Finding{
				Line:    x.line,
				Message: fmt.Sprintf("likely duplicate: %q / %q is already running", p.Project, p.Description),
			})
		}
		runningPairs[p] = true

		if x.a.Duration(now) > longRunning {
			findings = append(findings, Finding{
				Line: x.line,
				Message: fmt.Sprintf("has been running since %s, longer than %s",
					x.a.Start.Format(store.FormatDate), timeutil.FormatDuration(longRunning)),
			})
		}
	}

	return findings
}
