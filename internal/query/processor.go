package query

import (
	"time"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/timeutil"
)

// Processor is one pure transformation of an activity sequence, applied
// after filtering and before display. Processors never touch the log.
type Processor interface {
	Process(acts []activity.Activity) []activity.Activity
}

// Pipeline applies its processors in order, feeding each one's output to
// the next.
type Pipeline []Processor

func (p Pipeline) Process(acts []activity.Activity) []activity.Activity {
	for _, proc := range p {
		acts = proc.Process(acts)
	}
	return acts
}

// Round widens each interval to whole multiples of Granularity within its
// day: the start is floored, the end is ceiled. Rounded durations never
// undercount the original.
type Round struct {
	Granularity time.Duration
}

func (r Round) Process(acts []activity.Activity) []activity.Activity {
	if r.Granularity <= 0 {
		return acts
	}
	out := make([]activity.Activity, len(acts))
	for i, a := range acts {
		a.Start = floorTo(a.Start, r.Granularity)
		if a.End != nil {
			end := ceilTo(*a.End, r.Granularity)
			a.End = &end
		}
		out[i] = a
	}
	return out
}

// floorTo and ceilTo round relative to midnight of t's own day, so the
// result is independent of the time zone's offset from UTC.

func floorTo(t time.Time, g time.Duration) time.Time {
	day := timeutil.DateOf(t)
	return day.Add(t.Sub(day) / g * g)
}

func ceilTo(t time.Time, g time.Duration) time.Time {
	day := timeutil.DateOf(t)
	off := t.Sub(day)
	if rem := off % g; rem != 0 {
		off += g - rem
	}
	return day.Add(off)
}
