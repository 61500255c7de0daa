package renderer

import (
	"fmt"
	"strings"

	"github.com/finbook/finbook"
)

// Transactions renders the fund transactions of a book as a markdown table.
func Transactions(txs []finbook.FundTransaction) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Fund Transactions")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Date | Kind | Amount | Description |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---|")
	for _, t := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", t.Date, t.Kind, t.Amount, t.Description)
	}
	return b.String()
}

// TradeGains renders the trade gains of a book as a markdown table.
func TradeGains(gains []finbook.TradeGain) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Trade Gains")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Symbol | Instrument | Entry | Exit | Quantity | Buy | Sell | Profit |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|---:|")
	for _, t := range gains {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Symbol, t.Instrument, t.EntryDate, t.ExitDate, t.Quantity, t.BuyValue, t.SellValue, t.Profit)
	}
	return b.String()
}

// Dividends renders the dividend records of a book as a markdown table.
func Dividends(dividends []finbook.DividendRecord) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Dividends")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Symbol | ISIN | Ex-Date | Quantity | Per Share | Net Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, t := range dividends {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			t.Symbol, t.ISIN, t.ExDate, t.Quantity, t.PerShare, t.NetAmount)
	}
	return b.String()
}
