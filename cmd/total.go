package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	moneytxt "github.com/arwer13/money.txt"
	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "display the running total balance" }
func (*totalCmd) Usage() string {
	return `mt total

  Displays the running balance over the whole ledger, with milestones
  resetting the computed value to the recorded one.
`
}

func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, cfg, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(moneytxt.M(ledger.TotalValue(), cfg.Currency))
	return subcommands.ExitSuccess
}
