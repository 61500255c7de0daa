package renderer

import (
	"strings"
	"testing"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses a markdown document and returns the text of every heading,
// level first, e.g. "1:Reconciliation of dividends".
func headings(t *testing.T, md string) []string {
	t.Helper()

	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			out = append(out, string(rune('0'+h.Level))+":"+b.String())
		}
		return ast.WalkContinue, nil
	})
	return out
}

// tableRows counts data rows, ignoring header and separator lines.
func tableRows(md string) int {
	n := 0
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if strings.Contains(line, "---") {
			continue
		}
		n++
	}
	return n
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleFundResult() finbook.Result[finbook.FundTransaction] {
	return finbook.Result[finbook.FundTransaction]{
		Uniques: []finbook.FundTransaction{
			finbook.NewAddition("acct-1", date.New(2024, 1, 10), d("50000"), "NEFT transfer"),
		},
		Duplicates: []finbook.FundTransaction{
			finbook.NewWithdrawal("acct-1", date.New(2024, 3, 5), d("12000"), "payout"),
		},
	}
}

func TestReconciliationMarkdown(t *testing.T) {
	md := ReconciliationMarkdown(FundReconciliation(sampleFundResult()))

	hs := headings(t, md)
	want := []string{"1:Reconciliation of fund transactions", "2:New records", "2:Already recorded"}
	if len(hs) != len(want) {
		t.Fatalf("headings = %v, want %v", hs, want)
	}
	for i := range want {
		if hs[i] != want[i] {
			t.Errorf("heading[%d] = %q, want %q", i, hs[i], want[i])
		}
	}

	if !strings.Contains(md, "2 records: 1 duplicate, 1 unique.") {
		t.Errorf("missing summary line in:\n%s", md)
	}
	if !strings.Contains(md, "2024-01-10") || !strings.Contains(md, "NEFT transfer (addition)") {
		t.Errorf("missing unique record line in:\n%s", md)
	}
	// 2 tables of (1 header + 1 data row) each.
	if got := tableRows(md); got != 4 {
		t.Errorf("table rows = %d, want 4:\n%s", got, md)
	}
}

func TestReconciliationMarkdownOmitsEmptySections(t *testing.T) {
	res := sampleFundResult()
	res.Duplicates = nil
	md := ReconciliationMarkdown(FundReconciliation(res))

	if strings.Contains(md, "Already recorded") {
		t.Errorf("empty duplicate section should be omitted:\n%s", md)
	}
	if !strings.Contains(md, "1 records: 0 duplicate, 1 unique.") {
		t.Errorf("missing summary line in:\n%s", md)
	}
}

func TestTradeGainAndDividendAdapters(t *testing.T) {
	gains := finbook.Result[finbook.TradeGain]{
		Uniques: []finbook.TradeGain{{
			Symbol: "INFY", Instrument: "EQ",
			EntryDate: date.New(2024, 2, 1), ExitDate: date.New(2024, 6, 1),
			Quantity: d("10"), BuyValue: d("14000"), SellValue: d("15500"), Profit: d("1500"),
		}},
	}
	md := ReconciliationMarkdown(TradeGainReconciliation(gains))
	if !strings.Contains(md, "Reconciliation of trade gains") {
		t.Errorf("missing title in:\n%s", md)
	}
	if !strings.Contains(md, "2024-06-01") {
		t.Errorf("trade gains should be dated on the exit day:\n%s", md)
	}

	dividends := finbook.Result[finbook.DividendRecord]{
		Duplicates: []finbook.DividendRecord{{
			Symbol: "INFY", ISIN: "INE009A01021", ExDate: date.New(2024, 5, 20),
			Quantity: d("10"), PerShare: d("18"), NetAmount: d("180"),
		}},
	}
	md = ReconciliationMarkdown(DividendReconciliation(dividends))
	if !strings.Contains(md, "Reconciliation of dividends") {
		t.Errorf("missing title in:\n%s", md)
	}
	if !strings.Contains(md, "INE009A01021") {
		t.Errorf("missing ISIN in:\n%s", md)
	}
}

func TestXIRRMarkdown(t *testing.T) {
	rep := &finbook.Report{
		AsOf:         date.New(2025, 1, 10),
		Rate:         finbook.Percent(10.0),
		Invested:     finbook.M(50000, "INR"),
		Withdrawn:    finbook.M(0, "INR"),
		NetInvested:  finbook.M(50000, "INR"),
		CurrentValue: finbook.M(55000, "INR"),
		Gain:         finbook.M(5000, "INR"),
		GainPercent:  finbook.Percent(10.0),
		Residual:     0,
	}

	md := XIRRMarkdown(rep)

	hs := headings(t, md)
	if len(hs) != 1 || hs[0] != "1:Return Report as of 2025-01-10" {
		t.Fatalf("headings = %v", hs)
	}
	for _, want := range []string{"Total Invested", "Current Value", "XIRR (annualized)", "+10.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "did not fully converge") {
		t.Errorf("converged report should not carry a residual warning:\n%s", md)
	}

	rep.Residual = 0.5
	md = XIRRMarkdown(rep)
	if !strings.Contains(md, "did not fully converge") {
		t.Errorf("missing residual warning in:\n%s", md)
	}
}

func TestTransactionTables(t *testing.T) {
	txs := []finbook.FundTransaction{
		finbook.NewAddition("acct-1", date.New(2024, 1, 10), d("50000"), "NEFT transfer"),
		finbook.NewWithdrawal("acct-1", date.New(2024, 3, 5), d("12000"), "payout"),
	}
	md := Transactions(txs)
	if hs := headings(t, md); len(hs) != 1 || hs[0] != "1:Fund Transactions" {
		t.Fatalf("headings = %v", hs)
	}
	// header + 2 data rows
	if got := tableRows(md); got != 3 {
		t.Errorf("table rows = %d, want 3:\n%s", got, md)
	}

	md = TradeGains([]finbook.TradeGain{{
		Symbol: "INFY", Instrument: "EQ",
		EntryDate: date.New(2024, 2, 1), ExitDate: date.New(2024, 6, 1),
		Quantity: d("10"), BuyValue: d("14000"), SellValue: d("15500"), Profit: d("1500"),
	}})
	if !strings.Contains(md, "# Trade Gains") || !strings.Contains(md, "INFY") {
		t.Errorf("unexpected trade gains table:\n%s", md)
	}

	md = Dividends([]finbook.DividendRecord{{
		Symbol: "INFY", ISIN: "INE009A01021", ExDate: date.New(2024, 5, 20),
		Quantity: d("10"), PerShare: d("18"), NetAmount: d("180"),
	}})
	if !strings.Contains(md, "# Dividends") || !strings.Contains(md, "INE009A01021") {
		t.Errorf("unexpected dividends table:\n%s", md)
	}
}
