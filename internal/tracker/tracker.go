// Package tracker owns the in-memory shift collection and the read-side
// aggregations over it. One tracker instance per process run; it is the only
// holder of the store handle and of mutable shift state.
package tracker

import (
	"context"
	"sort"
	"time"

	"turni/internal/core"
	"turni/internal/store"
)

// annualizeFactor scales the recorded gross up to a yearly figure for the tax
// estimate, treating the data set as roughly four weeks of earnings. The same
// factor scales the yearly estimate back down for display.
const annualizeFactor = 52.0 / 4.0

// DefaultHighPayThreshold is the summary's boundary for counting well-paid
// shifts, inclusive.
const DefaultHighPayThreshold = 100.0

type Tracker struct {
	shifts []core.Shift
	store  store.Store

	// Now is read once per FilterRecentDays call. Overridable in tests.
	Now func() time.Time
}

// MonthTotal is one row of the monthly aggregation.
type MonthTotal struct {
	Month string // YYYY-MM
	Total float64
}

// Summary is the compact report behind the summary command.
type Summary struct {
	Shifts      int
	Gross       float64
	TaxEstimate float64 // yearly estimate scaled back to the recorded window
	HighPay     int
}

// New loads the full collection from the store eagerly. If the load fails the
// tracker is not usable and the error propagates to the caller.
func New(ctx context.Context, st store.Store) (*Tracker, error) {
	shifts, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Tracker{shifts: shifts, store: st, Now: time.Now}, nil
}

// Add appends the shift and persists the whole collection. On a save failure
// the in-memory append is not rolled back: the caller sees an in-memory state
// ahead of the store. Documented limitation, kept from the original design.
func (t *Tracker) Add(ctx context.Context, s core.Shift) error {
	t.shifts = append(t.shifts, s)
	return t.store.Save(ctx, t.shifts)
}

// ListAllSorted returns a copy of the collection in ascending date order.
// The sort is stable, so shifts sharing a date keep their insertion order.
// Lexicographic comparison equals chronological order only for the canonical
// zero-padded date format.
func (t *Tracker) ListAllSorted() []core.Shift {
	out := make([]core.Shift, len(t.shifts))
	copy(out, t.shifts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// FilterRecentDays returns the shifts whose date, taken as midnight UTC, falls
// on or after now minus n days. Order is preserved; the wall clock is read
// once per call.
func (t *Tracker) FilterRecentDays(n int) []core.Shift {
	cutoff := t.Now().Add(-time.Duration(n) * 24 * time.Hour)
	var out []core.Shift
	for _, s := range t.shifts {
		if !s.DateUTC().Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// TotalPay sums pay over an arbitrary subsequence of shifts. It does not
// depend on the tracker's own collection.
func (t *Tracker) TotalPay(shifts []core.Shift) float64 {
	var total float64
	for _, s := range shifts {
		total += s.Pay()
	}
	return total
}

// MonthlyTotals groups every shift by its YYYY-MM prefix and sums pay per
// group, returned in ascending month order.
func (t *Tracker) MonthlyTotals() []MonthTotal {
	byMonth := make(map[string]float64)
	for _, s := range t.shifts {
		byMonth[s.MonthKey()] += s.Pay()
	}
	out := make([]MonthTotal, 0, len(byMonth))
	for month, total := range byMonth {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// CountHighPay counts shifts whose pay meets the threshold. The boundary is
// inclusive: a shift paying exactly the threshold counts.
func (t *Tracker) CountHighPay(threshold float64) int {
	n := 0
	for _, s := range t.shifts {
		if s.Pay() >= threshold {
			n++
		}
	}
	return n
}

// Summarize builds the summary report: shift count, gross pay, a very rough
// tax estimate (gross annualized, estimated yearly, scaled back down), and
// the high-pay count at the given threshold.
func (t *Tracker) Summarize(threshold float64) Summary {
	gross := t.TotalPay(t.shifts)
	return Summary{
		Shifts:      len(t.shifts),
		Gross:       gross,
		TaxEstimate: core.EstimateTaxYearly(gross*annualizeFactor) / annualizeFactor,
		HighPay:     t.CountHighPay(threshold),
	}
}
