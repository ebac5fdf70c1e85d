package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arwer13/money.txt/renderer"
	"github.com/google/subcommands"
)

type weeklyCmd struct {
	date string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display the weekly tracked-expense report" }
func (*weeklyCmd) Usage() string {
	return `mt weekly [-d <date>]

  Displays the tracked expenses bucketed into Mon-Sun windows, from the
  week of the earliest entry through the given date.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.WeeklyMarkdown(model, cfg.Currency))
	return subcommands.ExitSuccess
}
