package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arwer13/money.txt/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the full ledger report" }
func (*summaryCmd) Usage() string {
	return `mt summary [-d <date>]

  Displays the total balance, the weekly tracked expenses, the monthly
  by-category table and the milestone reconciliation.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(model, cfg.Currency))
	return subcommands.ExitSuccess
}
