package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests; it is a no-op in a normal run.
func completion() {
	importFlags := map[string]complete.Predictor{
		"f":   predict.Files("*.csv"),
		"all": predict.Nothing,
		"n":   predict.Nothing,
	}
	fundImportFlags := map[string]complete.Predictor{
		"f":       predict.Files("*.csv"),
		"account": predict.Something,
		"all":     predict.Nothing,
		"n":       predict.Nothing,
	}

	fb := &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-file": predict.Files("*.jsonl"),
			"currency":  predict.Set{"INR", "USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"import":           {Flags: fundImportFlags},
			"import-gains":     {Flags: importFlags},
			"import-dividends": {Flags: importFlags},
			"xirr": {Flags: map[string]complete.Predictor{
				"value":    predict.Something,
				"holdings": predict.Files("*.json"),
				"path":     predict.Something,
				"on":       predict.Something,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"k": predict.Set{"fund", "gains", "dividends", "all"},
			}},
			"assist": {},
			"topic":  {Args: predict.Set{"book", "import", "xirr", "*"}},
		},
	}
	fb.Complete("fb")
}
