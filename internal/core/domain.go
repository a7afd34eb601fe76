package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Delimiter separates fields in the persisted record format. Notes containing
// the delimiter are not escaped and will not round-trip; this is a documented
// limitation of the format, not something the codec tries to repair.
const Delimiter = ","

// Shift is one recorded unit of work. It is immutable once constructed:
// the tracker only ever appends new shifts, it never edits one in place.
type Shift struct {
	Date  string // canonical form YYYY-MM-DD
	Hours float64
	Rate  float64
	Note  string // optional, may be empty
}

// Pay returns the derived pay for the shift. It is always recomputed and
// never stored.
func (s Shift) Pay() float64 {
	return s.Hours * s.Rate
}

// MonthKey returns the YYYY-MM prefix of the shift date, used as the grouping
// key for monthly totals. Assumes the canonical zero-padded date format.
func (s Shift) MonthKey() string {
	if len(s.Date) < 7 {
		return s.Date
	}
	return s.Date[:7]
}

// DateUTC interprets the shift date as midnight UTC. Malformed dates degrade
// silently: fields that cannot be parsed are left zero, so a bad date collapses
// to an epoch-like value instead of failing. Callers that need strict dates
// must validate upstream.
func (s Shift) DateUTC() time.Time {
	var year, month, day int
	if len(s.Date) >= 10 {
		year, _ = strconv.Atoi(s.Date[0:4])
		month, _ = strconv.Atoi(s.Date[5:7])
		day, _ = strconv.Atoi(s.Date[8:10])
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FormatError reports a malformed persisted record. It aborts the load or add
// that encountered it; partial recovery is never attempted.
type FormatError struct {
	Line   int // 1-based line number in the backing store
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseShift decodes one line of the persisted format. The line number is
// 1-based and used only for error messages.
//
// The split is naive: no quoting, no escaping. Fewer than 3 fields or
// non-numeric hours/rate yield a FormatError. The note field is optional.
func ParseShift(line string, lineno int) (Shift, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 3 {
		return Shift{}, &FormatError{Line: lineno, Reason: "bad record"}
	}

	hours, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Shift{}, &FormatError{Line: lineno, Reason: "bad number"}
	}
	rate, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Shift{}, &FormatError{Line: lineno, Reason: "bad number"}
	}

	s := Shift{
		Date:  parts[0],
		Hours: hours,
		Rate:  rate,
	}
	if len(parts) >= 4 {
		s.Note = parts[3]
	}
	return s, nil
}

// Record encodes the shift as a single line of the persisted format, with no
// trailing newline. Floats use shortest round-trip formatting so that
// ParseShift(s.Record(), n) reproduces s field-for-field whenever no field
// contains the delimiter.
func (s Shift) Record() string {
	return strings.Join([]string{
		s.Date,
		strconv.FormatFloat(s.Hours, 'g', -1, 64),
		strconv.FormatFloat(s.Rate, 'g', -1, 64),
		s.Note,
	}, Delimiter)
}
