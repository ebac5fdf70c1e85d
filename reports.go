package moneytxt

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TotalValue computes the running balance over the whole ledger: transaction
// values are summed in ledger order, and every milestone command resets the
// running total to its recorded value instead of adding to it.
func (l *Ledger) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		switch {
		case e.Command == CmdMilestone:
			total = e.Value
		case !e.IsCommand():
			total = total.Add(e.Value)
		}
	}
	return total
}

// WeeklyBuckets partitions the dates from the Monday on or before the
// earliest entry through asOf into Mon-Sun windows and sums the negated
// values of the weekly-tracked expenses in each. Windows without matching
// entries still appear with value 0, as does every window when no tracked
// categories are configured.
func (l *Ledger) WeeklyBuckets(asOf Date) []WeeklyBucket {
	if l.Len() == 0 {
		return nil
	}
	var buckets []WeeklyBucket
	for week := range Weeks(l.FirstDay(), asOf) {
		w := week
		cell := Cell{Value: decimal.Zero}
		// No tracked prefixes means nothing is tracked, not everything: the
		// windows still appear, all at zero.
		if len(l.weekly) > 0 {
			for e := range l.Filter(Filter{Period: &w, Sign: "-", Categories: l.weekly}) {
				cell.Value = cell.Value.Add(e.Value.Neg())
				cell.Notes = append(cell.Notes, e.String())
			}
		}
		buckets = append(buckets, WeeklyBucket{Period: week, Cell: cell})
	}
	return buckets
}

// MonthlyByCategory partitions the dates from the configured month boundary
// on or before the earliest entry through asOf into anchored month windows.
// Each window carries its income sum and its negated expense sums grouped by
// top-level category.
func (l *Ledger) MonthlyByCategory(asOf Date) []MonthRow {
	if l.Len() == 0 {
		return nil
	}
	var rows []MonthRow
	for month := range Months(l.FirstDay(), asOf, l.monthStartDay) {
		m := month
		row := MonthRow{
			Period:     month,
			Label:      fmt.Sprintf("%s (%s)", month.From.Format("2006 January"), month.Label()),
			TotalSpent: decimal.Zero,
			Expenses:   make(map[string]Cell),
		}
		row.Income.Value = decimal.Zero
		for e := range l.Filter(Filter{Period: &m}) {
			switch {
			case e.Value.IsNegative():
				top := e.Categories.Top()
				cell := row.Expenses[top]
				cell.Value = cell.Value.Add(e.Value.Neg())
				cell.Notes = append(cell.Notes, e.String())
				row.Expenses[top] = cell
				row.TotalSpent = row.TotalSpent.Add(e.Value.Neg())
			case e.Value.IsPositive():
				row.Income.Value = row.Income.Value.Add(e.Value)
				row.Income.Notes = append(row.Income.Notes, e.String())
			}
		}
		row.Balance = row.Income.Value.Sub(row.TotalSpent)
		rows = append(rows, row)
	}
	return rows
}

// CategoriesSeen returns the distinct full category paths across all
// entries, sorted for stable output.
func (l *Ledger) CategoriesSeen() []Categories {
	seen := make(map[string]Categories)
	for _, e := range l.entries {
		if len(e.Categories) > 0 {
			seen[e.Categories.String()] = e.Categories
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	result := make([]Categories, 0, len(keys))
	for _, k := range keys {
		result = append(result, seen[k])
	}
	return result
}

// Reconcile walks the ledger comparing the computed running total against
// each milestone's recorded value, and reports the discrepancy per milestone
// together with the two compared figures.
func (l *Ledger) Reconcile() []Reconciliation {
	var result []Reconciliation
	running := decimal.Zero
	left := l.FirstDay()
	for e := range l.Filter(Filter{Commands: []string{"", CmdMilestone}}) {
		if e.Command != CmdMilestone {
			running = running.Add(e.Value)
			continue
		}
		result = append(result, Reconciliation{
			Period:    Range{From: left, To: e.Day}.Label(),
			Diff:      e.Value.Sub(running),
			Accounted: running,
			Actual:    e.Value,
			Notes: []string{
				"Accounted: " + running.StringFixed(0),
				"Actual: " + e.Value.StringFixed(0),
			},
		})
		running = e.Value
		left = e.Day
	}
	return result
}

// MakeModel assembles the full report model: total balance, weekly series,
// monthly table and milestone reconciliation, all as of the given date.
func (l *Ledger) MakeModel(asOf Date) *Model {
	model := &Model{
		AsOf:       asOf,
		TotalValue: l.TotalValue(),
		Weekly:     l.WeeklyBuckets(asOf),
		Monthly:    l.MonthlyByCategory(asOf),
		Milestones: l.Reconcile(),
	}

	tracked := make([]string, 0, len(l.weekly))
	for _, c := range l.weekly {
		tracked = append(tracked, c.Top())
	}
	model.WeeklyTracked = strings.Join(tracked, ", ")

	// Order the monthly table's category columns by total spend across all
	// months, biggest spender first; ties break alphabetically.
	totals := make(map[string]decimal.Decimal)
	for _, row := range model.Monthly {
		for cat, cell := range row.Expenses {
			totals[cat] = totals[cat].Add(cell.Value)
		}
	}
	columns := make([]string, 0, len(totals))
	for cat := range totals {
		columns = append(columns, cat)
	}
	slices.SortFunc(columns, func(a, b string) int {
		if c := totals[b].Cmp(totals[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	model.CategoryColumns = columns

	return model
}
