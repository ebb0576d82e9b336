// Package cmd implements the cw command line: rational arithmetic, the stock
// ledger and the software academy.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/classwork"
	"github.com/etnz/classwork/academy"
	"github.com/etnz/classwork/academy/sqlstore"
	"github.com/etnz/classwork/renderer"
	"github.com/etnz/classwork/stock"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rationalCmd{}, "rational")

	c.Register(&stockShowCmd{}, "stock")
	c.Register(&stockAddCmd{}, "stock")
	c.Register(&stockRemoveCmd{}, "stock")
	c.Register(&stockAdjustCmd{}, "stock")
	c.Register(&stockReplaceCmd{}, "stock")
	c.Register(&stockReportCmd{}, "stock")
	c.Register(&stockFmtCmd{}, "stock")

	c.Register(&coursesCmd{}, "academy")
	c.Register(&courseCmd{}, "academy")
	c.Register(&teachersCmd{}, "academy")
	c.Register(&topicsCmd{}, "academy")
	c.Register(&roomsCmd{}, "academy")
	c.Register(&menuCmd{}, "academy")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	stockFile       = "stock.jsonl"
	academyDriver   = "sqlite"
	academyDSN      = "academy.db"
	adminSecret     = academy.DefaultSecret
	adminSecretHash = ""
	defaultCurrency = ""
	Verbose         = false
)

// LoadEnv loads the .env file of the working directory, if any, into the
// environment. Variables already set are kept.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// SetFlags declares the global flags, defaulting to the environment.
func SetFlags(f *flag.FlagSet) {
	f.StringVar(&stockFile, "stock-file", getenv(EnvStockFile, stockFile), "Path to the stock file (JSONL format)")
	f.StringVar(&academyDriver, "academy-driver", getenv(EnvAcademyDriver, academyDriver), "Academy database driver: sqlite or postgres")
	f.StringVar(&academyDSN, "academy-dsn", getenv(EnvAcademyDSN, academyDSN), "Academy database file (sqlite) or connection URL (postgres)")
	f.StringVar(&defaultCurrency, "currency", getenv(EnvDefaultCurrency, defaultCurrency), "ISO 4217 currency of prices without one, e.g. EUR")
	f.BoolVar(&Verbose, "v", getenvBool(EnvVerbose, Verbose), "Enable debug logging")
	// secrets are never flags, they would show in the process list.
	adminSecret = getenv(EnvAdminSecret, adminSecret)
	adminSecretHash = getenv(EnvAdminSecretHash, adminSecretHash)
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("warning, ignoring %s=%q: %v", key, v, err)
		return def
	}
	return b
}

// checkCurrency fails unless code is empty or a known ISO 4217 code.
func checkCurrency(code string) error {
	if code != "" && money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q: %w", code, classwork.ErrValue)
	}
	return nil
}

// DecodeComposition reads the stock file. A missing file is an empty
// composition.
func DecodeComposition() (*stock.Composition, error) {
	f, err := os.Open(stockFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, stock file does not exist, starting from an empty composition")
		return stock.NewComposition()
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stock.DecodeComposition(f)
}

// EncodeComposition replaces the stock file with c.
func EncodeComposition(c *stock.Composition) error {
	f, err := os.Create(stockFile)
	if err != nil {
		return err
	}
	if err := stock.EncodeComposition(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OpenAcademy opens the academy store selected by the global flags.
func OpenAcademy(ctx context.Context) (*sqlstore.Store, error) {
	level := slog.LevelWarn
	if Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return sqlstore.Open(ctx, sqlstore.Config{Driver: academyDriver, DSN: academyDSN, Logger: logger})
}

// AdminGate returns the gate protecting administrative actions. A bcrypt hash
// takes precedence over a plain secret.
func AdminGate() (*academy.Gate, error) {
	if adminSecretHash != "" {
		return academy.NewHashedGate(adminSecretHash)
	}
	return academy.NewGate(adminSecret), nil
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// output prints md, or writes it as HTML to htmlFile when set.
func output(md, htmlFile string) subcommands.ExitStatus {
	if htmlFile == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	html, err := renderer.HTML(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(htmlFile, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", htmlFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %s\n", htmlFile)
	return subcommands.ExitSuccess
}
