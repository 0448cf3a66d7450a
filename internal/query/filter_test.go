package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/query"
)

func act(day int, project, description string) activity.Activity {
	return activity.Activity{
		Project:     project,
		Description: description,
		Start:       time.Date(2026, 8, day, 9, 0, 0, 0, time.Local),
	}
}

func date(day int) *time.Time {
	d := time.Date(2026, 8, day, 0, 0, 0, 0, time.Local)
	return &d
}

var acts = []activity.Activity{
	act(28, "work", "write spec"),
	act(29, "home", "chores"),
	act(30, "work", "review"),
	act(31, "work", "write spec"),
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	got := query.Filter{}.Apply(acts)
	assert.Len(t, got, len(acts))
}

func TestFilterDateRange(t *testing.T) {
	got := query.Filter{From: date(29), To: date(30)}.Apply(acts)
	assert.Len(t, got, 2)
	assert.Equal(t, "chores", got[0].Description)
	assert.Equal(t, "review", got[1].Description)

	// A stricter range never grows the result.
	stricter := query.Filter{From: date(30), To: date(30)}.Apply(acts)
	assert.LessOrEqual(t, len(stricter), len(got))
}

func TestFilterSingleDate(t *testing.T) {
	got := query.Filter{Date: date(30)}.Apply(acts)
	assert.Len(t, got, 1)
	assert.Equal(t, "review", got[0].Description)
}

func TestFilterProject(t *testing.T) {
	got := query.Filter{Project: "work"}.Apply(acts)
	assert.Len(t, got, 3)
	for _, a := range got {
		assert.Equal(t, "work", a.Project)
	}
}

func TestFilterConjunction(t *testing.T) {
	got := query.Filter{From: date(29), To: date(31), Project: "work"}.Apply(acts)
	assert.Len(t, got, 2)
}

func TestFilterCountKeepsMostRecentSuffix(t *testing.T) {
	unrestricted := query.Filter{}.Apply(acts)
	got := query.Filter{Count: 2}.Apply(acts)

	assert.Len(t, got, 2)
	assert.Equal(t, unrestricted[len(unrestricted)-2:], got)

	// Count larger than the result is a no-op.
	assert.Len(t, query.Filter{Count: 10}.Apply(acts), len(acts))
}
