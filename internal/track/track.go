// Package track implements the manipulation commands over the set of
// currently running activities. The running set is always derived from the
// log on the spot, never cached.
//
// Callers supply a time of day combined with the invocation's date, so an
// activity cannot span midnight. Stopping "earlier" than the start on the
// same day is rejected instead of being read as a day rollover; this is a
// known limitation of the time-only input contract.
package track

import (
	"errors"
	"fmt"
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/store"
)

var (
	// ErrNoRunningActivity is returned by Change when nothing is running.
	ErrNoRunningActivity = errors.New("no activity is currently running")
	// ErrNotFound is returned by Continue when the requested history index
	// is negative or exceeds the number of distinct (project, description)
	// pairs.
	ErrNotFound = errors.New("no activity found at this index")
	// ErrStopBeforeStart is returned when a stop time precedes a running
	// activity's start.
	ErrStopBeforeStart = errors.New("stop time is before the start of a running activity")
)

// Start appends a new running activity to the bucket for at's date. Other
// running activities are left running; tracking several at once is allowed.
func Start(l *store.Log, project, description string, at time.Time) *activity.Activity {
	a := &activity.Activity{
		Project:     project,
		Description: description,
		Start:       at.Truncate(time.Minute),
	}
	l.DayFor(at).Append(a)
	return a
}

// Stop sets the end of every running activity to at. It returns the stopped
// activities; an empty result means there was nothing to stop, which is not
// an error. If at precedes any running activity's start, nothing is stopped.
func Stop(l *store.Log, at time.Time) ([]*activity.Activity, error) {
	at = at.Truncate(time.Minute)
	running := l.Running()
	for _, a := range running {
		if at.Before(a.Start) {
			return nil, fmt.Errorf("%w: %q started at %s",
				ErrStopBeforeStart, a.Project, a.Start.Format(store.FormatTime))
		}
	}
	for _, a := range running {
		end := at
		a.End = &end
	}
	return running, nil
}

// Cancel removes every running activity from the log, as if it was never
// started, and returns the removed activities.
func Cancel(l *store.Log) []*activity.Activity {
	return l.RemoveRunning()
}

// Change overwrites the project, description, or start time of the most
// recently started running activity. Only non-nil fields are applied.
func Change(l *store.Log, project, description *string, at *time.Time) (*activity.Activity, error) {
	running := l.Running()
	if len(running) == 0 {
		return nil, ErrNoRunningActivity
	}

	// Most recently started; later recording order wins a tie.
	last := running[0]
	for _, a := range running[1:] {
		if !a.Start.Before(last.Start) {
			last = a
		}
	}

	if project != nil {
		last.Project = *project
	}
	if description != nil {
		last.Description = *description
	}
	if at != nil {
		// Keep the activity's own date: the entry stays in its day bucket,
		// and the bucket header is what carries the date on disk. Only the
		// time of day moves.
		t := at.Truncate(time.Minute)
		last.Start = time.Date(last.Start.Year(), last.Start.Month(), last.Start.Day(),
			t.Hour(), t.Minute(), 0, 0, last.Start.Location())
	}
	return last, nil
}

// Continue restarts the index-th most recent distinct (project, description)
// pair (0 = most recent), with optional overrides, at the given time. Unlike
// Start it first stops everything currently running at that same time.
func Continue(l *store.Log, project, description *string, index int, at time.Time) (*activity.Activity, error) {
	pairs := activity.DistinctPairs(l.Snapshot())
	if index < 0 || index >= len(pairs) {
		return nil, fmt.Errorf("%w: %d (only %d in history)", ErrNotFound, index, len(pairs))
	}

	pair := pairs[index]
	if project != nil {
		pair.Project = *project
	}
	if description != nil {
		pair.Description = *description
	}

	if _, err := Stop(l, at); err != nil {
		return nil, err
	}
	return Start(l, pair.Project, pair.Description, at), nil
}
