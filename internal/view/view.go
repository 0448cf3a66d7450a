// Package view renders display rows for the terminal. It only ever reads
// activity snapshots; all aggregation happens in report.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiliamara/worklog/internal/activity"
	"github.com/tiliamara/worklog/internal/report"
	"github.com/tiliamara/worklog/internal/store"
	"github.com/tiliamara/worklog/internal/timeutil"
)

var (
	dateStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	totalStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// List renders activities either grouped under date headers or as a flat
// table with a date column. acts must be in recording order.
func List(w io.Writer, acts []activity.Activity, grouped bool, now time.Time) {
	if len(acts) == 0 {
		fmt.Fprintln(w, "no activities to display")
		return
	}

	if !grouped {
		t := newTable("date", "started", "stopped", "duration", "project", "description")
		for _, a := range acts {
			t.add(activityCells(a, now, a.Start.Format(store.FormatDate))...)
		}
		t.render(w)
		return
	}

	var day time.Time
	first := true
	for i := 0; i < len(acts); {
		day = timeutil.DateOf(acts[i].Start)
		j := i
		for j < len(acts) && timeutil.SameDay(acts[j].Start, day) {
			j++
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintln(w, dateStyle.Render(day.Format(store.FormatDate)))
		t := newTable("started", "stopped", "duration", "project", "description")
		for _, a := range acts[i:j] {
			t.add(activityCells(a, now)...)
		}
		t.render(w)
		i = j
	}
}

func activityCells(a activity.Activity, now time.Time, prefix ...string) []string {
	stopped := runningStyle.Render("running")
	if a.End != nil {
		stopped = a.End.Format(store.FormatTime)
	}
	cells := append([]string{}, prefix...)
	return append(cells,
		a.Start.Format(store.FormatTime),
		stopped,
		timeutil.FormatDuration(a.Duration(now)),
		a.Project,
		a.Description,
	)
}

// Running renders the currently running activities.
func Running(w io.Writer, acts []activity.Activity, now time.Time) {
	if len(acts) == 0 {
		fmt.Fprintln(w, "no activity is currently running")
		return
	}
	t := newTable("started", "duration", "project", "description")
	for _, a := range acts {
		t.add(
			a.Start.Format(store.FormatTime),
			runningStyle.Render(timeutil.FormatDuration(a.Duration(now))),
			a.Project,
			a.Description,
		)
	}
	t.render(w)
}

// Report renders per-project totals and the grand total.
func Report(w io.Writer, rows []report.Row, total time.Duration) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no activities to report")
		return
	}
	t := newTable("project", "duration")
	for _, r := range rows {
		d := timeutil.FormatDuration(r.Total)
		if r.Running {
			d = runningStyle.Render(d + " (running)")
		}
		t.add(r.Project, d)
	}
	t.add(totalStyle.Render("total"), totalStyle.Render(timeutil.FormatDuration(total)))
	t.render(w)
}

// StatusReport renders the three status windows and the running activities.
func StatusReport(w io.Writer, st report.Status, now time.Time) {
	statusWindow(w, "today", st.Today, st.TodayTotal)
	statusWindow(w, "current week", st.Week, st.WeekTotal)
	statusWindow(w, "current month", st.Month, st.MonthTotal)

	fmt.Fprintln(w, headingStyle.Render("currently running"))
	Running(w, st.Running, now)
}

func statusWindow(w io.Writer, label string, rows []report.Row, total time.Duration) {
	fmt.Fprintln(w, headingStyle.Render(label))
	Report(w, rows, total)
	fmt.Fprintln(w)
}

// Pairs renders distinct (project, description) pairs. With numbered set,
// each row carries the index accepted by `continue`.
func Pairs(w io.Writer, pairs []activity.Pair, numbered bool) {
	if len(pairs) == 0 {
		fmt.Fprintln(w, "no activities found")
		return
	}
	var t *table
	if numbered {
		t = newTable("number", "project", "description")
		for i, p := range pairs {
			t.add(fmt.Sprintf("%d", i), p.Project, p.Description)
		}
	} else {
		t = newTable("project", "description")
		for _, p := range pairs {
			t.add(p.Project, p.Description)
		}
	}
	t.render(w)
}

// Projects renders project names, one per line, quoted unless noQuotes.
func Projects(w io.Writer, names []string, noQuotes bool) {
	for _, name := range names {
		if noQuotes {
			fmt.Fprintln(w, name)
		} else {
			fmt.Fprintf(w, "%q\n", name)
		}
	}
}

// ParseErrors renders check diagnostics, one per line.
func ParseErrors(w io.Writer, errs []*store.ParseError) {
	if len(errs) == 0 {
		fmt.Fprintln(w, "log file is well-formed")
		return
	}
	for _, e := range errs {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(fmt.Sprintf("line %d:", e.Line)), e.Msg)
		fmt.Fprintf(w, "  %s\n", faintStyle.Render(e.Text))
	}
}

// Findings renders sanity diagnostics, one per line.
func Findings(w io.Writer, findings []report.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "no irregularities found")
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(fmt.Sprintf("line %d:", f.Line)), f.Message)
	}
}

// table pads cells per column. Widths are computed on the rendered width of
// the styled cell, so ANSI sequences don't skew alignment.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if cw := lipgloss.Width(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		var sb strings.Builder
		for i, c := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	styled := make([]string, len(t.header))
	for i, h := range t.header {
		styled[i] = headingStyle.Render(h)
	}
	writeRow(styled)
	for _, row := range t.rows {
		writeRow(row)
	}
}
