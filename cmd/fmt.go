package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	moneytxt "github.com/arwer13/money.txt"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `mt fmt [-o <file>]

  Validates and formats the local ledger file. Every line is parsed, sorted
  chronologically and written back in canonical form: explicit dates,
  trimmed category paths, evaluated amounts, tags after the note.
  By default the file is rewritten in place; use -o to write elsewhere.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Rewrites the ledger in place by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.Path == "" {
		fmt.Fprintln(os.Stderr, "Error: fmt needs a local ledger file (-f or MONEY_TXT_PATH)")
		return subcommands.ExitUsageError
	}

	ledger, err := moneytxt.LoadFile(cfg.Path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.outputFile
	if output == "" {
		output = cfg.Path
	}
	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q for writing: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := moneytxt.EncodeLedger(file, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d entries into %s\n", ledger.Len(), output)
	return subcommands.ExitSuccess
}
