package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type stockFmtCmd struct{}

func (*stockFmtCmd) Name() string     { return "stock-fmt" }
func (*stockFmtCmd) Synopsis() string { return "validates and formats the stock file into a canonical form" }
func (*stockFmtCmd) Usage() string {
	return `cw stock-fmt

  Reads every product of the stock file, validates it, and writes the file
  back in canonical JSONL form. Nothing is written if a line is invalid.
`
}

func (*stockFmtCmd) SetFlags(f *flag.FlagSet) {}

func (*stockFmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(stockFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	comp, err := DecodeComposition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	if err := EncodeComposition(comp); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock file '%s' has been formatted.\n", stockFile)
	return subcommands.ExitSuccess
}
