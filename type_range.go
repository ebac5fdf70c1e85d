package moneytxt

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Label formats the range in the short "dd.mm-dd.mm" form used in reports.
func (r Range) Label() string { return fmt.Sprintf("%s-%s", r.From.Label(), r.To.Label()) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Weeks returns an iterator over the consecutive Mon-Sun windows covering the
// dates from the Monday on or before 'from' until the window containing
// 'until' (a window is yielded as long as it starts on or before 'until').
func Weeks(from, until Date) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for monday := from.StartOfWeek(); !monday.After(until); monday = monday.Add(7) {
			if !yield(Range{From: monday, To: monday.Add(6)}) {
				return
			}
		}
	}
}

// Months returns an iterator over the consecutive calendar-month windows
// anchored at anchorDay, starting at the anchor on or before 'from' and
// continuing while the window starts on or before 'until'. A window spans
// from one anchor day to the day before the next one.
func Months(from, until Date, anchorDay int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for anchor := from.StartOfMonth(anchorDay); !anchor.After(until); anchor = anchor.AddMonths(1) {
			if !yield(Range{From: anchor, To: anchor.AddMonths(1).Add(-1)}) {
				return
			}
		}
	}
}
