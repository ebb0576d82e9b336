package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/classwork/stock"
	md "github.com/nao1215/markdown"
)

// CompositionMarkdown renders the products of c as a table, followed by the
// total cost.
//
// Prices without currency are shown in currency, if not empty.
func CompositionMarkdown(c *stock.Composition, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Composition")
	if c.Len() == 0 {
		doc.PlainText("No products.")
		return doc.String()
	}

	rows := make([][]string, 0, c.Len())
	for _, p := range c.Products() {
		rows = append(rows, []string{
			p.Name(),
			strconv.Itoa(p.Quantity()),
			formatPrice(p.Price(), currency),
			formatPrice(p.Cost(), currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Product", "Quantity", "Price", "Cost"},
		Rows:   rows,
	})
	doc.LF()
	doc.PlainText(fmt.Sprintf("Total cost: %s", md.Bold(formatPrice(c.TotalCost(), currency))))
	return doc.String()
}

// ProductReportMarkdown renders the cost of a single product of c.
func ProductReportMarkdown(c *stock.Composition, name, currency string) (string, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(p.Name())
	doc.BulletList(
		fmt.Sprintf("Quantity: %d", p.Quantity()),
		fmt.Sprintf("Price: %s", formatPrice(p.Price(), currency)),
		fmt.Sprintf("Total cost: %s", formatPrice(p.Cost(), currency)),
	)
	return doc.String(), nil
}

func formatPrice(p stock.Price, currency string) string {
	if p.Currency() == "" && currency != "" {
		p = p.WithCurrency(currency)
	}
	return p.Format()
}
