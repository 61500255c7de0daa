package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/date"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	value    string
	holdings string
	path     string
	on       string
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "compute the annualized money-weighted return" }
func (*xirrCmd) Usage() string {
	return `fb xirr -value <amount> | -holdings <holdings.json> [-path <jsonpath>] [-on <date>]

  Computes the annualized money-weighted rate of return (XIRR) of the
  account's fund transactions, using the current portfolio value as a
  notional liquidation. The value comes from -value, or is extracted from a
  broker holdings JSON export with -holdings.
`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "Current portfolio value.")
	f.StringVar(&c.holdings, "holdings", "", "Holdings JSON export to read the current value from.")
	f.StringVar(&c.path, "path", finbook.DefaultHoldingsValuePath, "jsonpath of the value inside the holdings export.")
	f.StringVar(&c.on, "on", date.Today().String(), "Valuation date of the current value.")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	value, status := c.currentValue()
	if status != subcommands.ExitSuccess {
		return status
	}

	asOf, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing valuation date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	rep := finbook.NewReport(book.FundTransactions, finbook.M(value, *defaultCurrency), asOf)
	printMarkdown(renderer.XIRRMarkdown(rep))
	return subcommands.ExitSuccess
}

// currentValue resolves the valuation from the -value or -holdings flags,
// which are mutually exclusive.
func (c *xirrCmd) currentValue() (decimal.Decimal, subcommands.ExitStatus) {
	switch {
	case c.value != "" && c.holdings != "":
		fmt.Fprintln(os.Stderr, "-value and -holdings flags cannot be used together")
		return decimal.Zero, subcommands.ExitUsageError

	case c.value != "":
		v, err := decimal.NewFromString(c.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -value: %v\n", err)
			return decimal.Zero, subcommands.ExitUsageError
		}
		return v, subcommands.ExitSuccess

	case c.holdings != "":
		in, err := os.Open(c.holdings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening holdings export: %v\n", err)
			return decimal.Zero, subcommands.ExitFailure
		}
		defer in.Close()
		v, err := finbook.HoldingsValue(in, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading holdings export %q: %v\n", c.holdings, err)
			return decimal.Zero, subcommands.ExitFailure
		}
		return v, subcommands.ExitSuccess

	default:
		fmt.Fprintln(os.Stderr, "one of -value or -holdings is required")
		return decimal.Zero, subcommands.ExitUsageError
	}
}
