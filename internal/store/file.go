package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/tiliamara/worklog/internal/activity"
)

const fieldSeparator = " | "

// Load reads and parses the log file at path. A missing file yields an empty
// log so that the first `start` works without setup. Malformed lines are
// collected per line, never aborting the load; only I/O failures are errors.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Log{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read log file %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read log file %s: %w", path, err)
	}
	return l, nil
}

// Parse reads the day-bucketed log text. The returned error reflects reader
// failures only; malformed lines end up in the log's entries as ParseErrors.
func Parse(r io.Reader) (*Log, error) {
	l := &Log{}
	var day *Day

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if date, ok := parseDateHeader(line); ok {
			day = &Day{Date: date, Line: lineNo}
			l.Days = append(l.Days, day)
			continue
		}

		entry := parseActivityLine(line, lineNo, day)
		if day == nil {
			l.Preamble = append(l.Preamble, entry)
			continue
		}
		day.Entries = append(day.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// parseDateHeader recognises a bare date line like "2026-08-31".
func parseDateHeader(line string) (time.Time, bool) {
	if strings.Contains(line, "|") {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(FormatDate, strings.TrimSpace(line), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// parseActivityLine parses "HH:MM - [HH:MM] | project | description" against
// the date of the enclosing day bucket.
func parseActivityLine(line string, lineNo int, day *Day) *Entry {
	fail := func(kind ErrorKind, msg string) *Entry {
		return &Entry{Line: lineNo, Err: &ParseError{Line: lineNo, Text: line, Kind: kind, Msg: msg}}
	}

	if day == nil {
		return fail(BadLine, "activity line before any date header")
	}

	parts := strings.SplitN(line, fieldSeparator, 3)
	if len(parts) == 1 {
		return fail(BadDate, "neither a date header (YYYY-MM-DD) nor an activity line")
	}
	if len(parts) != 3 {
		return fail(BadLine, "expected `HH:MM - [HH:MM] | project | description`")
	}

	startRaw, endRaw, ok := strings.Cut(parts[0], "-")
	if !ok {
		return fail(BadTime, fmt.Sprintf("malformed time range %q", parts[0]))
	}

	start, err := parseTimeOfDay(startRaw, day.Date)
	if err != nil {
		return fail(BadTime, fmt.Sprintf("malformed start time %q", strings.TrimSpace(startRaw)))
	}

	a := &activity.Activity{
		Project:     strings.TrimSpace(parts[1]),
		Description: parts[2],
		Start:       start,
	}
	if a.Project == "" {
		return fail(BadLine, "empty project")
	}

	if strings.TrimSpace(endRaw) != "" {
		end, err := parseTimeOfDay(endRaw, day.Date)
		if err != nil {
			return fail(BadTime, fmt.Sprintf("malformed end time %q", strings.TrimSpace(endRaw)))
		}
		if end.Before(start) {
			return fail(EndBeforeStart, fmt.Sprintf("activity ends at %s before it starts at %s",
				end.Format(FormatTime), start.Format(FormatTime)))
		}
		a.End = &end
	}

	return &Entry{Activity: a, Line: lineNo}
}

func parseTimeOfDay(s string, date time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(FormatTime, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// Serialize writes the canonical text form of the log: one header per day
// bucket, one line per entry, blank lines between buckets. Malformed lines
// are emitted verbatim in their recorded position.
func Serialize(w io.Writer, l *Log) error {
	bw := bufio.NewWriter(w)

	for _, e := range l.Preamble {
		fmt.Fprintln(bw, e.Err.Text)
	}
	for i, d := range l.Days {
		if i > 0 || len(l.Preamble) > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintln(bw, d.Date.Format(FormatDate))
		for _, e := range d.Entries {
			if e.Err != nil {
				fmt.Fprintln(bw, e.Err.Text)
				continue
			}
			fmt.Fprintln(bw, formatActivity(e.Activity))
		}
	}
	return bw.Flush()
}

func formatActivity(a *activity.Activity) string {
	span := a.Start.Format(FormatTime) + " -"
	if a.End != nil {
		span += " " + a.End.Format(FormatTime)
	}
	return span + fieldSeparator + a.Project + fieldSeparator + a.Description
}

// Save atomically replaces the log file at path with the serialized log,
// creating parent directories as needed. A concurrent external writer still
// loses (last writer wins); the replace only guarantees the file is never
// observed half-written.
func Save(l *Log, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("cannot create log directory %s: %w", dir, err)
		}
	}

	var sb strings.Builder
	if err := Serialize(&sb, l); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(sb.String())); err != nil {
		return fmt.Errorf("cannot write log file %s: %w", path, err)
	}
	return nil
}
