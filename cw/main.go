// Command cw is the classwork command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/etnz/classwork/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		log.Printf("warning, cannot load .env file: %v", err)
	}
	cmd.SetFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, "cw")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Runs and exits when called by the shell for completion.
	completion(commander, flag.CommandLine).Complete("cw")

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the subcommands and their flags for the shell.
func completion(commander *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f), Args: predict.Something}
	})
	if topic, ok := root.Sub["topic"]; ok {
		topic.Args = predict.Set{"rational", "stock", "academy", "configuration", "*"}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBool(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "stock-file":
			flags[fl.Name] = predict.Files("*.jsonl")
		case fl.Name == "html":
			flags[fl.Name] = predict.Files("*.html")
		case fl.Name == "academy-driver":
			flags[fl.Name] = predict.Set{"sqlite", "postgres"}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}
