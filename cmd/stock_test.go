package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run parses args for cmd and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %v: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), f)
}

// useStockFile points the global stock file to a temporary file.
func useStockFile(t *testing.T) string {
	t.Helper()
	old := stockFile
	stockFile = filepath.Join(t.TempDir(), "stock.jsonl")
	t.Cleanup(func() { stockFile = old })
	return stockFile
}

func TestStockCommands(t *testing.T) {
	file := useStockFile(t)

	steps := []struct {
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{&stockAddCmd{}, []string{"-n", "Apple", "-q", "10", "-p", "1.5"}, subcommands.ExitSuccess},
		{&stockAddCmd{}, []string{"-n", "Pear", "-q", "3", "-p", "2"}, subcommands.ExitSuccess},
		{&stockAddCmd{}, []string{"-n", "Plum", "-q", "1", "-p", "4"}, subcommands.ExitSuccess},
		{&stockAddCmd{}, []string{"-n", "apple", "-q", "1", "-p", "1"}, subcommands.ExitFailure},
		{&stockAddCmd{}, []string{"-n", "Fig", "-q", "-1", "-p", "1"}, subcommands.ExitUsageError},
		{&stockAddCmd{}, []string{"-n", "Fig", "-q", "1", "-p", "cheap"}, subcommands.ExitUsageError},
		{&stockAddCmd{}, []string{"-n", "Fig", "-q", "1", "-p", "1", "-c", "XXX1"}, subcommands.ExitUsageError},
		{&stockAdjustCmd{}, []string{"-n", "pear", "--", "-5"}, subcommands.ExitSuccess},
		{&stockAdjustCmd{}, []string{"-n", "Kiwi", "1"}, subcommands.ExitFailure},
		{&stockRemoveCmd{}, []string{"plum"}, subcommands.ExitSuccess},
		{&stockRemoveCmd{}, []string{"Apple", "Kiwi"}, subcommands.ExitFailure},
		{&stockRemoveCmd{}, nil, subcommands.ExitUsageError},
		{&stockReplaceCmd{}, []string{"-old", "Pear", "-n", "Quince", "-q", "2", "-p", "3"}, subcommands.ExitSuccess},
		{&stockReplaceCmd{}, []string{"-old", "Pear", "-n", "Pear", "-q", "2", "-p", "3"}, subcommands.ExitFailure},
		{&stockReportCmd{}, []string{"-plain", "quince"}, subcommands.ExitSuccess},
		{&stockReportCmd{}, []string{"kiwi"}, subcommands.ExitFailure},
	}
	for i, s := range steps {
		if got := run(t, s.cmd, s.args...); got != s.want {
			t.Errorf("step %d: %s %v = %v, want %v", i, s.cmd.Name(), s.args, got, s.want)
		}
	}

	comp, err := DecodeComposition()
	if err != nil {
		t.Fatalf("DecodeComposition returned an unexpected error: %v", err)
	}
	if got, want := comp.Names(), []string{"Apple", "Quince"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := comp.TotalCost().String(); got != "21" {
		t.Errorf("TotalCost() = %s, want 21", got)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("stock file not written: %v", err)
	}
}

func TestStockShow_HTML(t *testing.T) {
	useStockFile(t)
	if got := run(t, &stockAddCmd{}, "-n", "Apple", "-q", "2", "-p", "1.25", "-c", "USD"); got != subcommands.ExitSuccess {
		t.Fatalf("stock-add = %v", got)
	}
	out := filepath.Join(t.TempDir(), "stock.html")
	if got := run(t, &stockShowCmd{}, "-html", out); got != subcommands.ExitSuccess {
		t.Fatalf("stock-show = %v", got)
	}
	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<h1>Composition</h1>", "Apple", "$2.50"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("HTML does not contain %q:\n%s", want, html)
		}
	}
}

func TestDecodeComposition_Missing(t *testing.T) {
	useStockFile(t)
	comp, err := DecodeComposition()
	if err != nil {
		t.Fatalf("DecodeComposition returned an unexpected error: %v", err)
	}
	if comp.Len() != 0 {
		t.Errorf("Len() = %d, want 0", comp.Len())
	}
}
