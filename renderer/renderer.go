// Package renderer turns the aggregated report model into markdown suitable
// for a terminal pager or any markdown consumer.
package renderer

import (
	"fmt"
	"io"
	"strings"

	moneytxt "github.com/arwer13/money.txt"
	"github.com/shopspring/decimal"
)

// money formats a decimal amount in the report's display currency.
func money(v decimal.Decimal, cur string) string {
	return moneytxt.M(v, cur).String()
}

// SummaryMarkdown renders the full report: total balance, weekly tracked
// expenses, the monthly table and the milestone reconciliation.
func SummaryMarkdown(m *moneytxt.Model, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ledger summary as of %s\n\n", m.AsOf)
	fmt.Fprintf(&b, "Total balance: **%s**\n\n", money(m.TotalValue, cur))
	ConditionalBlock(&b, func(w io.Writer) bool { return renderWeekly(w, m, cur) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMonthly(w, m, cur) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMilestones(w, m, cur) })
	return b.String()
}

// WeeklyMarkdown renders only the weekly tracked-expense series.
func WeeklyMarkdown(m *moneytxt.Model, cur string) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { return renderWeekly(w, m, cur) })
	return b.String()
}

// MonthlyMarkdown renders only the monthly by-category table.
func MonthlyMarkdown(m *moneytxt.Model, cur string) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMonthly(w, m, cur) })
	return b.String()
}

// MilestonesMarkdown renders only the milestone reconciliation series.
func MilestonesMarkdown(m *moneytxt.Model, cur string) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMilestones(w, m, cur) })
	return b.String()
}

func renderWeekly(w io.Writer, m *moneytxt.Model, cur string) bool {
	if len(m.Weekly) == 0 {
		return false
	}
	fmt.Fprintf(w, "## Weekly expenses")
	if m.WeeklyTracked != "" {
		fmt.Fprintf(w, " (%s)", m.WeeklyTracked)
	}
	fmt.Fprintf(w, "\n\n")
	row(w, "Week", "Spent", "Entries")
	separator(w, 3)
	for _, bucket := range m.Weekly {
		row(w, bucket.Period.Label(), money(bucket.Value, cur), strings.Join(bucket.Notes, "; "))
	}
	fmt.Fprintln(w)
	return true
}

func renderMonthly(w io.Writer, m *moneytxt.Model, cur string) bool {
	if len(m.Monthly) == 0 {
		return false
	}
	fmt.Fprintf(w, "## Monthly by category\n\n")
	header := append([]string{"Month", "Income", "Total spent", "Balance"}, m.CategoryColumns...)
	row(w, header...)
	separator(w, len(header))
	for _, month := range m.Monthly {
		cells := []string{
			month.Label,
			money(month.Income.Value, cur),
			money(month.TotalSpent, cur),
			money(month.Balance, cur),
		}
		for _, cat := range m.CategoryColumns {
			if cell, ok := month.Expenses[cat]; ok {
				cells = append(cells, money(cell.Value, cur))
			} else {
				cells = append(cells, "-")
			}
		}
		row(w, cells...)
	}
	fmt.Fprintln(w)
	return true
}

func renderMilestones(w io.Writer, m *moneytxt.Model, cur string) bool {
	if len(m.Milestones) == 0 {
		return false
	}
	fmt.Fprintf(w, "## Milestone reconciliation\n\n")
	row(w, "Period", "Discrepancy", "Accounted", "Actual")
	separator(w, 4)
	for _, rec := range m.Milestones {
		row(w, rec.Period, money(rec.Diff, cur), money(rec.Accounted, cur), money(rec.Actual, cur))
	}
	fmt.Fprintln(w)
	return true
}
