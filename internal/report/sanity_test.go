package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/store"
)

func parse(t *testing.T, text string) *store.Log {
	t.Helper()
	l, err := store.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return l
}

func TestSanityCleanLog(t *testing.T) {
	l := parse(t, "2026-08-31\n09:00 - 10:00 | work | write spec\n10:00 - 11:00 | home | chores\n")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	assert.Empty(t, report.SanityCheck(l, now))
}

func TestSanityEndBeforeStart(t *testing.T) {
	l := parse(t, "2026-08-31\n10:00 - 09:00 | work | backwards\n")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	findings := report.SanityCheck(l, now)
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Line)
	assert.Contains(t, findings[0].Message, "before it starts")
}

func TestSanityOverlap(t *testing.T) {
	l := parse(t, "2026-08-31\n09:00 - 10:00 | work | write spec\n09:30 - 10:30 | home | chores\n")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	findings := report.SanityCheck(l, now)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Line)
	assert.Contains(t, findings[0].Message, "overlaps")
}

func TestSanityTouchingIntervalsDoNotOverlap(t *testing.T) {
	l := parse(t, "2026-08-31\n09:00 - 10:00 | work | write spec\n10:00 - 11:00 | home | chores\n")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	assert.Empty(t, report.SanityCheck(l, now))
}

func TestSanityDuplicateRunningPair(t *testing.T) {
	l := parse(t, "2026-08-31\n09:00 - | work | write spec\n09:30 - | work | write spec\n")
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)

	findings := report.SanityCheck(l, now)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Line)
	assert.Contains(t, findings[0].Message, "duplicate")
}

func TestSanityConcurrentRunningIsAllowed(t *testing.T) {
	l := parse(t, "2026-08-31\n09:00 - | work | write spec\n09:30 - | home | chores\n")
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	assert.Empty(t, report.SanityCheck(l, now))
}

func TestSanityLongRunningActivity(t *testing.T) {
	l := parse(t, "2026-08-30\n09:00 - | work | forgotten\n")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	findings := report.SanityCheck(l, now)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "running since 2026-08-30")
}
