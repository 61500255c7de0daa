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

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file    string
	account string
	all     bool
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import fund transactions from a ledger CSV export" }
func (*importCmd) Usage() string {
	return `fb import -f <ledger.csv> [-account <id>] [-all] [-n]

  Reads a bank/broker ledger export, normalizes its rows into fund
  transactions, reconciles them against the book, and appends the new ones.
  Rows already present in the book are reported and skipped unless -all is
  given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Ledger CSV export to import (required).")
	f.StringVar(&c.account, "account", "", "Account identifier stamped on imported transactions.")
	f.BoolVar(&c.all, "all", false, "Append duplicates too, not only new records.")
	f.BoolVar(&c.dryRun, "n", false, "Report the reconciliation without writing to the book.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "the -f flag is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	rows, err := finbook.ReadLedgerCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger export %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	candidates := finbook.NewNormalizer(c.account).NormalizeAll(rows)

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	res := finbook.Reconcile(candidates, book.FundTransactions, finbook.KeyOfFundTransaction)
	printMarkdown(renderer.ReconciliationMarkdown(renderer.FundReconciliation(res)))

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
