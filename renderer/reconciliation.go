// Package renderer renders reconciliation and return reports to markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/finbook/finbook"
)

// Line is one record row of a reconciliation report.
type Line struct {
	Date   string
	Label  string
	Amount string
}

// Reconciliation is the render-ready view of a reconciliation result,
// independent of the record kind it was computed for.
type Reconciliation struct {
	Kind       string // human name of the record kind, e.g. "fund transactions"
	Duplicates []Line
	Uniques    []Line
}

// Total returns the number of classified candidates.
func (r *Reconciliation) Total() int { return len(r.Duplicates) + len(r.Uniques) }

// FundReconciliation adapts a fund transaction reconciliation result for rendering.
func FundReconciliation(res finbook.Result[finbook.FundTransaction]) *Reconciliation {
	line := func(t finbook.FundTransaction) Line {
		return Line{
			Date:   t.Date.String(),
			Label:  fmt.Sprintf("%s (%s)", t.Description, t.Kind),
			Amount: t.Amount.String(),
		}
	}
	return &Reconciliation{
		Kind:       "fund transactions",
		Duplicates: lines(res.Duplicates, line),
		Uniques:    lines(res.Uniques, line),
	}
}

// TradeGainReconciliation adapts a trade gain reconciliation result for rendering.
func TradeGainReconciliation(res finbook.Result[finbook.TradeGain]) *Reconciliation {
	line := func(t finbook.TradeGain) Line {
		return Line{
			Date:   t.ExitDate.String(),
			Label:  fmt.Sprintf("%s %s ×%s", t.Symbol, t.Instrument, t.Quantity),
			Amount: t.Profit.String(),
		}
	}
	return &Reconciliation{
		Kind:       "trade gains",
		Duplicates: lines(res.Duplicates, line),
		Uniques:    lines(res.Uniques, line),
	}
}

// DividendReconciliation adapts a dividend reconciliation result for rendering.
func DividendReconciliation(res finbook.Result[finbook.DividendRecord]) *Reconciliation {
	line := func(t finbook.DividendRecord) Line {
		return Line{
			Date:   t.ExDate.String(),
			Label:  fmt.Sprintf("%s (%s) ×%s", t.Symbol, t.ISIN, t.Quantity),
			Amount: t.NetAmount.String(),
		}
	}
	return &Reconciliation{
		Kind:       "dividends",
		Duplicates: lines(res.Duplicates, line),
		Uniques:    lines(res.Uniques, line),
	}
}

func lines[R any](recs []R, line func(R) Line) []Line {
	out := make([]Line, 0, len(recs))
	for _, r := range recs {
		out = append(out, line(r))
	}
	return out
}

// ReconciliationMarkdown renders a reconciliation result to a markdown report.
func ReconciliationMarkdown(r *Reconciliation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Reconciliation of %s\n\n", r.Kind)
	fmt.Fprintf(&b, "%d records: %d duplicate, %d unique.\n\n", r.Total(), len(r.Duplicates), len(r.Uniques))

	section := func(title string, ls []Line) {
		if len(ls) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		fmt.Fprintln(&b, "| Date | Record | Amount |")
		fmt.Fprintln(&b, "|:---|:---|---:|")
		for _, l := range ls {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", l.Date, l.Label, l.Amount)
		}
		fmt.Fprintln(&b)
	}
	section("New records", r.Uniques)
	section("Already recorded", r.Duplicates)

	return b.String()
}
