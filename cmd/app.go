// Package cmd implements the CLI application to read and report on a
// money.txt ledger.
package cmd

import (
	"flag"
	"fmt"

	moneytxt "github.com/arwer13/money.txt"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&totalCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&categoriesCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("f", "", "Path to the ledger file (overrides MONEY_TXT_PATH)")
	monthStart = flag.Int("month-start", 0, "Day of month anchoring monthly windows (overrides MONEY_TXT_MONTH_START)")
	weekly     = flag.String("weekly", "", "';'-separated weekly-tracked category prefixes (overrides MONEY_TXT_WEEKLY_CATEGORIES)")
	currency   = flag.String("currency", "", "Display currency code (overrides MONEY_TXT_CURRENCY)")
)

// loadConfig resolves the effective configuration: environment first, then
// command line overrides.
func loadConfig() (moneytxt.Config, error) {
	cfg, err := moneytxt.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if *ledgerFile != "" {
		cfg.Path = *ledgerFile
	}
	if *monthStart != 0 {
		cfg.MonthStartDay = *monthStart
	}
	if *weekly != "" {
		cfg.WeeklyCategories = moneytxt.ParseWeeklyCategories(*weekly)
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	return cfg, cfg.Validate()
}

// loadLedger loads and decodes the configured ledger source.
func loadLedger() (*moneytxt.Ledger, moneytxt.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	ledger, err := moneytxt.Load(cfg)
	return ledger, cfg, err
}

// parseAsOf parses an optional report end date, defaulting to today.
func parseAsOf(s string) (moneytxt.Date, error) {
	if s == "" {
		return moneytxt.Today(), nil
	}
	return moneytxt.ParseDate(s)
}

// printMarkdown renders markdown for the terminal and prints it.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
