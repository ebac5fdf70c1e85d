package moneytxt

import "github.com/shopspring/decimal"

// Cell is one aggregated report value with the formatted entries that
// support it.
type Cell struct {
	Value decimal.Decimal
	Notes []string
}

// WeeklyBucket is the tracked expense total of one Mon-Sun window.
type WeeklyBucket struct {
	Period Range
	Cell
}

// MonthRow is one anchored month window of the monthly report.
type MonthRow struct {
	Period     Range
	Label      string          // e.g. "2023 January (05.01-04.02)"
	Income     Cell            // sum of the window's income entries
	TotalSpent decimal.Decimal // sum of the window's negated expenses
	Balance    decimal.Decimal // income minus total spent
	Expenses   map[string]Cell // negated expense sums by top-level category
}

// Reconciliation compares the computed running total against one recorded
// milestone.
type Reconciliation struct {
	Period    string          // label of the span since the previous milestone
	Diff      decimal.Decimal // recorded milestone value minus computed total
	Accounted decimal.Decimal // computed running total at the milestone
	Actual    decimal.Decimal // the milestone's recorded value
	Notes     []string
}

// Model is the assembled report consumed by the renderer.
type Model struct {
	AsOf            Date
	TotalValue      decimal.Decimal
	WeeklyTracked   string // human readable list of weekly-tracked categories
	Weekly          []WeeklyBucket
	CategoryColumns []string // top-level categories, descending by total spend
	Monthly         []MonthRow
	Milestones      []Reconciliation
}
