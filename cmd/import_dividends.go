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

// importDividendsCmd holds the flags for the 'import-dividends' subcommand.
type importDividendsCmd struct {
	file   string
	all    bool
	dryRun bool
}

func (*importDividendsCmd) Name() string { return "import-dividends" }
func (*importDividendsCmd) Synopsis() string {
	return "import dividend credits from a dividend CSV export"
}
func (*importDividendsCmd) Usage() string {
	return `fb import-dividends -f <dividends.csv> [-all] [-n]

  Reads a broker dividend export, reconciles its records against the book,
  and appends the new ones.
`
}

func (c *importDividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Dividend CSV export to import (required).")
	f.BoolVar(&c.all, "all", false, "Append duplicates too, not only new records.")
	f.BoolVar(&c.dryRun, "n", false, "Report the reconciliation without writing to the book.")
}

func (c *importDividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "the -f flag is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dividend export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	candidates, err := finbook.ReadDividendsCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dividend export %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	res := finbook.Reconcile(candidates, book.Dividends, finbook.KeyOfDividend)
	printMarkdown(renderer.ReconciliationMarkdown(renderer.DividendReconciliation(res)))

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
