package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the distinct category paths used in the ledger" }
func (*categoriesCmd) Usage() string {
	return `mt categories

  Lists every full category path seen across the ledger's entries.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	for _, cat := range ledger.CategoriesSeen() {
		fmt.Fprintf(&b, "* %s\n", cat)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
