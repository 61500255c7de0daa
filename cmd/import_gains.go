package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// importGainsCmd holds the flags for the 'import-gains' subcommand.
type importGainsCmd struct {
	file   string
	all    bool
	dryRun bool
}

func (*importGainsCmd) Name() string     { return "import-gains" }
func (*importGainsCmd) Synopsis() string { return "import realized trade gains from a P&L CSV export" }
func (*importGainsCmd) Usage() string {
	return `fb import-gains -f <pnl.csv> [-all] [-n]

  Reads a broker P&L export, reconciles its trade gain records against the
  book, and appends the new ones.
`
}

func (c *importGainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "P&L CSV export to import (required).")
	f.BoolVar(&c.all, "all", false, "Append duplicates too, not only new records.")
	f.BoolVar(&c.dryRun, "n", false, "Report the reconciliation without writing to the book.")
}

func (c *importGainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "the -f flag is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening P&L export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	candidates, err := finbook.ReadTradeGainsCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading P&L export %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	res := finbook.Reconcile(candidates, book.TradeGains, finbook.KeyOfTradeGain)
	printMarkdown(renderer.ReconciliationMarkdown(renderer.TradeGainReconciliation(res)))

	if c.dryRun {
		return subcommands.ExitSuccess
	}

	toAppend := res.Uniques
	if c.all {
		toAppend = candidates
	}
	if len(toAppend) == 0 {
		fmt.Println("Nothing to append.")
		return subcommands.ExitSuccess
	}
	recs := make([]finbook.Record, 0, len(toAppend))
	for _, t := range toAppend {
		recs = append(recs, t)
	}
	return AppendRecords(recs...)
}
