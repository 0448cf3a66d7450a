package activity

import (
	"strings"
	"time"
)

// Activity is one tracked work interval.
type Activity struct {
	Project     string
	Description string
	Start       time.Time
	End         *time.Time // nil while the activity is running
}

// Running reports whether the activity has no recorded end yet.
func (a *Activity) Running() bool {
	return a.End == nil
}

// Duration returns the tracked span. A running activity is measured up to now.
func (a *Activity) Duration(now time.Time) time.Duration {
	if a.End != nil {
		return a.End.Sub(a.Start)
	}
	return now.Sub(a.Start)
}

// Overlaps reports whether the two intervals intersect. Running activities are
// treated as extending up to now.
func (a *Activity) Overlaps(b *Activity, now time.Time) bool {
	aEnd := now
	if a.End != nil {
		aEnd = *a.End
	}
	bEnd := now
	if b.End != nil {
		bEnd = *b.End
	}
	return a.Start.Before(bEnd) && b.Start.Before(aEnd)
}

// Matches reports whether term occurs in the project or description,
// case-insensitively. The empty term matches everything.
func (a *Activity) Matches(term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Project), t) ||
		strings.Contains(strings.ToLower(a.Description), t)
}

// Pair identifies a distinct (project, description) combination.
type Pair struct {
	Project     string
	Description string
}

// DistinctPairs returns the distinct (project, description) pairs of acts,
// most recently recorded first. acts must be in recording order.
func DistinctPairs(acts []Activity) []Pair {
	seen := make(map[Pair]bool)
	var pairs []Pair
	for i := len(acts) - 1; i >= 0; i-- {
		p := Pair{Project: acts[i].Project, Description: acts[i].Description}
		if seen[p] {
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
	}
	return pairs
}
