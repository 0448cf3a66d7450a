package store

import (
	"fmt"
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// Textual formats of the log file.
const (
	FormatDate = "2006-01-02"
	FormatTime = "15:04"
)

// ErrorKind classifies a malformed log line.
type ErrorKind int

const (
	BadLine ErrorKind = iota
	BadDate
	BadTime
	EndBeforeStart
)

// ParseError describes one malformed log line. The offending line is kept
// verbatim and written back on save, so a rewrite never destroys input the
// parser could not understand.
type ParseError struct {
	Line int
	Text string
	Kind ErrorKind
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Entry is one activity line inside a day bucket. Exactly one of Activity and
// Err is set.
type Entry struct {
	Activity *activity.Activity
	Line     int // 1-based position in the source file; 0 for new entries
	Err      *ParseError
}

// Day is the bucket of entries recorded under one date header.
type Day struct {
	Date    time.Time // midnight, local
	Line    int
	Entries []*Entry
}

// Append records an activity at the end of the day bucket.
func (d *Day) Append(a *activity.Activity) {
	d.Entries = append(d.Entries, &Entry{Activity: a})
}

// Log is the parsed content of one log file.
type Log struct {
	Days     []*Day
	Preamble []*Entry // malformed lines seen before the first date header
}

// DayFor returns the bucket for date, creating it in chronological position
// if absent. date is truncated to midnight.
func (l *Log) DayFor(date time.Time) *Day {
	date = timeutil.DateOf(date)
	idx := len(l.Days)
	for i, d := range l.Days {
		if timeutil.SameDay(d.Date, date) {
			return d
		}
		if d.Date.After(date) {
			idx = i
			break
		}
	}
	day := &Day{Date: date}
	l.Days = append(l.Days, nil)
	copy(l.Days[idx+1:], l.Days[idx:])
	l.Days[idx] = day
	return day
}

// Activities returns every well-formed activity in recording order: day
// buckets in file order, entries in the order they were recorded.
func (l *Log) Activities() []*activity.Activity {
	var acts []*activity.Activity
	for _, d := range l.Days {
		for _, e := range d.Entries {
			if e.Activity != nil {
				acts = append(acts, e.Activity)
			}
		}
	}
	return acts
}

// Snapshot returns copies of all well-formed activities in recording order,
// for read paths that must not touch the log.
func (l *Log) Snapshot() []activity.Activity {
	ptrs := l.Activities()
	acts := make([]activity.Activity, len(ptrs))
	for i, p := range ptrs {
		acts[i] = *p
	}
	return acts
}

// Running returns all activities without an end, in recording order. The
// returned pointers alias the log; mutating them mutates the log.
func (l *Log) Running() []*activity.Activity {
	var running []*activity.Activity
	for _, a := range l.Activities() {
		if a.Running() {
			running = append(running, a)
		}
	}
	return running
}

// RemoveRunning deletes every running activity from the log and returns the
// removed activities. Day buckets left empty are dropped.
func (l *Log) RemoveRunning() []*activity.Activity {
	var removed []*activity.Activity
	days := l.Days[:0]
	for _, d := range l.Days {
		entries := d.Entries[:0]
		for _, e := range d.Entries {
			if e.Activity != nil && e.Activity.Running() {
				removed = append(removed, e.Activity)
				continue
			}
			entries = append(entries, e)
		}
		d.Entries = entries
		if len(d.Entries) > 0 {
			days = append(days, d)
		}
	}
	l.Days = days
	return removed
}

// Errors returns every parse error in line order.
func (l *Log) Errors() []*ParseError {
	var errs []*ParseError
	for _, e := range l.Preamble {
		errs = append(errs, e.Err)
	}
	for _, d := range l.Days {
		for _, e := range d.Entries {
			if e.Err != nil {
				errs = append(errs, e.Err)
			}
		}
	}
	return errs
}
