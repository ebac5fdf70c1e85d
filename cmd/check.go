package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arwer13/money.txt/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	date string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reconcile the computed balance against recorded milestones" }
func (*checkCmd) Usage() string {
	return `mt check [-d <date>]

  Compares the running computed total against every milestone's recorded
  value and reports the discrepancies.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(model.Milestones) == 0 {
		fmt.Println("no milestones recorded")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.MilestonesMarkdown(model, cfg.Currency))
	return subcommands.ExitSuccess
}
