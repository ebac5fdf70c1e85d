package moneytxt

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger is an ordered collection of entries, non-decreasing by day, with
// stable tie-breaking by insertion order among equal dates. Entries are only
// ever appended through Account; once the source is exhausted the ledger is
// read-only and is the sole source of truth for all reports.
type Ledger struct {
	entries []Entry
	lastDay Date // most recently assigned date, inherited by undated lines

	monthStartDay int          // day of month anchoring the monthly windows
	weekly        []Categories // category prefixes tracked in the weekly report
}

// NewLedger creates an empty ledger. monthStartDay is the day of the month
// considered a month boundary (must be in 1..28); weekly is the set of
// category-path prefixes included in the weekly expense summary.
func NewLedger(monthStartDay int, weekly []Categories) *Ledger {
	return &Ledger{monthStartDay: monthStartDay, weekly: weekly}
}

// MonthStartDay returns the configured month boundary day.
func (l *Ledger) MonthStartDay() int { return l.monthStartDay }

// WeeklyCategories returns the configured weekly-tracked category prefixes.
func (l *Ledger) WeeklyCategories() []Categories { return l.weekly }

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// FirstDay returns the date of the earliest entry, or the zero Date when the
// ledger is empty.
func (l *Ledger) FirstDay() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Day
}

// LastDay returns the date of the latest entry, or the zero Date when the
// ledger is empty.
func (l *Ledger) LastDay() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Day
}

// Account parses one ledger line and inserts the resulting entry. Blank and
// comment lines are silently skipped. The line may omit its date, in which
// case the most recently assigned date is inherited.
//
// Insertion keeps the ledger sorted by date: an entry on or after the last
// stored day is appended (the common case for an already sorted file), any
// other entry is placed after the stored entries sharing its date.
func (l *Ledger) Account(line string) error {
	e, err := ParseEntry(line, l.lastDay)
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}
	l.lastDay = e.Day

	if len(l.entries) == 0 || !e.Day.Before(l.entries[len(l.entries)-1].Day) {
		l.entries = append(l.entries, *e)
		return nil
	}
	i := sort.Search(len(l.entries), func(i int) bool { return l.entries[i].Day.After(e.Day) })
	l.entries = slices.Insert(l.entries, i, *e)
	return nil
}

// Entries returns an iterator over all entries in ledger order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Filter selects the subsequence of entries matching all its predicates.
// The zero value selects every transaction entry.
type Filter struct {
	// Period restricts entries to an inclusive date range. A zero From
	// defaults to the first entry's date, a zero To to the current date.
	Period *Range
	// Categories keeps entries whose category path starts with at least one
	// of the given prefixes.
	Categories []Categories
	// Tags keeps entries carrying at least one of the given tags.
	Tags []string
	// Sign is "+" to keep strictly positive values, "-" strictly negative.
	Sign string
	// Commands lists the command names to keep, "" standing for transaction
	// entries. When nil, only transaction entries are kept.
	Commands []string
}

func (f Filter) match(e Entry, first Date) bool {
	commands := f.Commands
	if commands == nil {
		commands = []string{""}
	}
	if !slices.Contains(commands, e.Command) {
		return false
	}
	switch f.Sign {
	case "+":
		if !e.Value.IsPositive() {
			return false
		}
	case "-":
		if !e.Value.IsNegative() {
			return false
		}
	}
	if f.Period != nil {
		r := *f.Period
		if r.From.IsZero() {
			r.From = first
		}
		if r.To.IsZero() {
			r.To = Today()
		}
		if !r.Contains(e.Day) {
			return false
		}
	}
	if f.Categories != nil {
		ok := false
		for _, prefix := range f.Categories {
			if e.Categories.StartsWith(prefix) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.Tags != nil && !e.HasTag(f.Tags...) {
		return false
	}
	return true
}

// Filter returns a lazy iterator over the entries matching f, preserving
// ledger order.
func (l *Ledger) Filter(f Filter) iter.Seq[Entry] {
	first := l.FirstDay()
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !f.match(e, first) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Validate checks the ledger configuration.
func (l *Ledger) Validate() error {
	if l.monthStartDay < 1 || l.monthStartDay > 28 {
		return fmt.Errorf("month start day %d out of range 1..28", l.monthStartDay)
	}
	return nil
}
