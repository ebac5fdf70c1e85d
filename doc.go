// Package moneytxt parses a plain-text ledger of dated financial entries,
// keeps them in chronological order, and derives aggregate reports: running
// balance, weekly and monthly totals by category, and a reconciliation of
// the computed balance against manually recorded milestones.
//
// The ledger format is one directive per line. A transaction line is an
// optional YYYY.MM.DD date, a comma-separated category path, a signed amount
// (which may be a small arithmetic formula), and a free-text note whose
// '#'-prefixed words become tags. A command line is a date, a '!'-prefixed
// directive name, and an amount; the only directive the aggregator
// interprets is '!milestone', which records an externally verified balance.
package moneytxt
