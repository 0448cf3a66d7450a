package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/report"
)

func finished(day, startH, startM, endH, endM int, project, description string) activity.Activity {
	end := time.Date(2026, 8, day, endH, endM, 0, 0, time.Local)
	return activity.Activity{
		Project:     project,
		Description: description,
		Start:       time.Date(2026, 8, day, startH, startM, 0, 0, time.Local),
		End:         &end,
	}
}

func TestByProject(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	acts := []activity.Activity{
		finished(31, 9, 0, 10, 0, "work", "write spec"),
		finished(31, 10, 0, 11, 30, "home", "chores"),
	}

	rows, total := report.ByProject(acts, now)
	require.Len(t, rows, 2)
	assert.Equal(t, "home", rows[0].Project)
	assert.Equal(t, 90*time.Minute, rows[0].Total)
	assert.Equal(t, "work", rows[1].Project)
	assert.Equal(t, time.Hour, rows[1].Total)
	assert.Equal(t, 150*time.Minute, total)
}

func TestByProjectTotalEqualsRowSum(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	acts := []activity.Activity{
		finished(30, 9, 0, 10, 0, "a", "x"),
		finished(30, 10, 0, 10, 45, "b", "y"),
		finished(31, 9, 0, 9, 30, "a", "x"),
		{Project: "c", Description: "z", Start: time.Date(2026, 8, 31, 11, 0, 0, 0, time.Local)},
	}

	rows, total := report.ByProject(acts, now)
	var sum time.Duration
	for _, r := range rows {
		sum += r.Total
	}
	assert.Equal(t, sum, total)
}

func TestByProjectRunningCountsUpToNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.Local)
	acts := []activity.Activity{
		{Project: "work", Description: "write spec", Start: time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)},
	}

	rows, total := report.ByProject(acts, now)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Running)
	assert.Equal(t, 90*time.Minute, rows[0].Total)
	assert.Equal(t, 90*time.Minute, total)
}

func TestBuildStatusWindows(t *testing.T) {
	// 2026-08-31 is a Monday.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	acts := []activity.Activity{
		finished(3, 9, 0, 10, 0, "work", "early in the month"),
		finished(29, 9, 0, 10, 0, "work", "last week"),
		finished(31, 9, 0, 10, 30, "work", "today"),
		{Project: "work", Description: "ongoing", Start: time.Date(2026, 8, 31, 11, 0, 0, 0, time.Local)},
	}

	st := report.BuildStatus(acts, "", now)

	// Today: 1h30m finished plus 1h running.
	assert.Equal(t, 150*time.Minute, st.TodayTotal)
	// The week starts Monday the 31st; the 29th (Saturday) is last week.
	assert.Equal(t, st.TodayTotal, st.WeekTotal)
	// The month holds everything.
	assert.Equal(t, st.TodayTotal+2*time.Hour, st.MonthTotal)

	require.Len(t, st.Running, 1)
	assert.Equal(t, "ongoing", st.Running[0].Description)
}

func TestBuildStatusProjectRestriction(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	acts := []activity.Activity{
		finished(31, 9, 0, 10, 0, "work", "write spec"),
		finished(31, 10, 0, 11, 0, "home", "chores"),
	}

	st := report.BuildStatus(acts, "home", now)
	assert.Equal(t, time.Hour, st.TodayTotal)
	require.Len(t, st.Today, 1)
	assert.Equal(t, "home", st.Today[0].Project)
}

func TestProjects(t *testing.T) {
	acts := []activity.Activity{
		finished(31, 9, 0, 10, 0, "work", "x"),
		finished(31, 10, 0, 11, 0, "home", "y"),
		{Project: "work", Description: "z", Start: time.Date(2026, 8, 31, 11, 0, 0, 0, time.Local)},
	}

	assert.Equal(t, []string{"home", "work"}, report.Projects(acts, false))
	assert.Equal(t, []string{"work"}, report.Projects(acts, true))
}

func TestSearch(t *testing.T) {
	acts := []activity.Activity{
		finished(30, 9, 0, 10, 0, "work", "Write Spec"),
		finished(30, 10, 0, 11, 0, "home", "chores"),
		finished(31, 9, 0, 10, 0, "work", "Write Spec"),
	}

	pairs := report.Search(acts, "write")
	require.Len(t, pairs, 1)
	assert.Equal(t, activity.Pair{Project: "work", Description: "Write Spec"}, pairs[0])

	// Empty term lists every distinct pair, most recent first.
	all := report.Search(acts, "")
	require.Len(t, all, 2)
	assert.Equal(t, "work", all[0].Project)

	assert.Empty(t, report.Search(acts, "nothing like this"))
}
