package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	kind string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the records of the book" }
func (*txCmd) Usage() string {
	return `fb tx [-k <kind>]

  Lists the book's records as tables. Kind is one of fund, gains, dividends
  or all.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "all", "Record kind to list (fund, gains, dividends, all).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.kind {
	case "fund":
		printMarkdown(renderer.Transactions(book.FundTransactions))
	case "gains":
		printMarkdown(renderer.TradeGains(book.TradeGains))
	case "dividends":
		printMarkdown(renderer.Dividends(book.Dividends))
	case "all":
		printMarkdown(renderer.Transactions(book.FundTransactions))
		printMarkdown(renderer.TradeGains(book.TradeGains))
		printMarkdown(renderer.Dividends(book.Dividends))
	default:
		fmt.Fprintf(os.Stderr, "unknown kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
