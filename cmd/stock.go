package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/classwork/renderer"
	"github.com/etnz/classwork/stock"
	"github.com/google/subcommands"
)

// stockShowCmd prints the whole composition.
type stockShowCmd struct {
	html string
}

func (*stockShowCmd) Name() string     { return "stock-show" }
func (*stockShowCmd) Synopsis() string { return "display the products in stock and their total cost" }
func (*stockShowCmd) Usage() string {
	return `cw stock-show [-html <file>]

  Displays every product of the stock file with its cost, and the total cost.
`
}

func (c *stockShowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the report as HTML to this file instead of printing it")
}

func (c *stockShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := checkCurrency(defaultCurrency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	comp, err := DecodeComposition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	return output(renderer.CompositionMarkdown(comp, defaultCurrency), c.html)
}

// stockAddCmd appends a product.
type stockAddCmd struct {
	name     string
	quantity int
	price    string
	currency string
}

func (*stockAddCmd) Name() string     { return "stock-add" }
func (*stockAddCmd) Synopsis() string { return "add a new product to the stock" }
func (*stockAddCmd) Usage() string {
	return `cw stock-add -n <name> -q <quantity> -p <price> [-c <currency>]

  Adds a product to the stock file. Product names are unique, regardless of
  case.
`
}

func (c *stockAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity in stock")
	f.StringVar(&c.price, "p", "0", "Unit price, e.g. 50.99")
	f.StringVar(&c.currency, "c", "", "Currency of the price, e.g. USD")
}

func (c *stockAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := newProduct(c.name, c.quantity, c.price, c.currency)
	if p == nil {
		return status
	}
	return updateComposition(func(comp *stock.Composition) error {
		return comp.Add(p)
	}, fmt.Sprintf("Successfully added %v", p))
}

// stockRemoveCmd removes products by name.
type stockRemoveCmd struct{}

func (*stockRemoveCmd) Name() string     { return "stock-remove" }
func (*stockRemoveCmd) Synopsis() string { return "remove products from the stock" }
func (*stockRemoveCmd) Usage() string {
	return `cw stock-remove <name>...

  Removes the named products. Nothing is removed if one of them is unknown.
`
}

func (*stockRemoveCmd) SetFlags(f *flag.FlagSet) {}

func (*stockRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expecting at least one product name")
		return subcommands.ExitUsageError
	}
	keys := make([]stock.Key, f.NArg())
	for i, name := range f.Args() {
		keys[i] = stock.Name(name)
	}
	return updateComposition(func(comp *stock.Composition) error {
		return comp.Remove(keys...)
	}, fmt.Sprintf("Successfully removed %d product(s)", len(keys)))
}

// stockAdjustCmd changes the quantity of a product.
type stockAdjustCmd struct {
	name string
}

func (*stockAdjustCmd) Name() string     { return "stock-adjust" }
func (*stockAdjustCmd) Synopsis() string { return "increase or decrease the quantity of a product" }
func (*stockAdjustCmd) Usage() string {
	return `cw stock-adjust -n <name> <delta>

  Adds delta to the quantity of the product. A negative delta decreases it,
  the quantity never goes below zero.
`
}

func (c *stockAdjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
}

func (c *stockAdjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one delta")
		return subcommands.ExitUsageError
	}
	delta, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing delta %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	return updateComposition(func(comp *stock.Composition) error {
		return comp.Adjust(c.name, delta)
	}, fmt.Sprintf("Successfully adjusted %q by %d", c.name, delta))
}

// stockReplaceCmd replaces a product with a new definition.
type stockReplaceCmd struct {
	stockAddCmd
	old string
}

func (*stockReplaceCmd) Name() string     { return "stock-replace" }
func (*stockReplaceCmd) Synopsis() string { return "replace a product of the stock" }
func (*stockReplaceCmd) Usage() string {
	return `cw stock-replace -old <name> -n <name> -q <quantity> -p <price> [-c <currency>]

  Replaces the product called old, keeping its position.
`
}

func (c *stockReplaceCmd) SetFlags(f *flag.FlagSet) {
	c.stockAddCmd.SetFlags(f)
	f.StringVar(&c.old, "old", "", "Name of the product to replace")
}

func (c *stockReplaceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := newProduct(c.name, c.quantity, c.price, c.currency)
	if p == nil {
		return status
	}
	return updateComposition(func(comp *stock.Composition) error {
		return comp.Replace(c.old, p)
	}, fmt.Sprintf("Successfully replaced %q by %v", c.old, p))
}

// stockReportCmd prints the cost of a single product.
type stockReportCmd struct {
	plain bool
}

func (*stockReportCmd) Name() string     { return "stock-report" }
func (*stockReportCmd) Synopsis() string { return "display the total cost of a product" }
func (*stockReportCmd) Usage() string {
	return `cw stock-report [-plain] <name>

  Displays a product and its total cost.
`
}

func (c *stockReportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print a single plain text line")
}

func (c *stockReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one product name")
		return subcommands.ExitUsageError
	}
	comp, err := DecodeComposition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	if c.plain {
		line, err := comp.Report(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(line)
		return subcommands.ExitSuccess
	}
	md, err := renderer.ProductReportMarkdown(comp, f.Arg(0), defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// newProduct parses the product flags. On error it reports it and returns a
// nil product.
func newProduct(name string, quantity int, price, currency string) (*stock.Product, subcommands.ExitStatus) {
	if err := checkCurrency(currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	pr, err := stock.ParsePrice(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	p, err := stock.NewProduct(name, quantity, pr.WithCurrency(currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	return p, subcommands.ExitSuccess
}

// updateComposition decodes the stock file, applies update and saves it back.
func updateComposition(update func(*stock.Composition) error, success string) subcommands.ExitStatus {
	comp, err := DecodeComposition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	if err := update(comp); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeComposition(comp); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing stock file %q: %v\n", stockFile, err)
		return subcommands.ExitFailure
	}
	fmt.Println(success)
	return subcommands.ExitSuccess
}
