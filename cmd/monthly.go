package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arwer13/money.txt/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly by-category report" }
func (*monthlyCmd) Usage() string {
	return `mt monthly [-d <date>]

  Displays income, total spend, balance and per-category spend for each
  month window, anchored at the configured month boundary day.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseAsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, cfg, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	model := ledger.MakeModel(asOf)
	printMarkdown(renderer.MonthlyMarkdown(model, cfg.Currency))
	return subcommands.ExitSuccess
}
