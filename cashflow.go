package finbook

import (
	"sort"

	"github.com/finbook/finbook/date"
	"github.com/shopspring/decimal"
)

// CashFlow is a dated, signed amount of money moving to or from the investor.
// Negative amounts are money the investor pays in; positive amounts are money
// the investor receives.
type CashFlow struct {
	Date   date.Date
	Amount decimal.Decimal
}

// CashFlows converts fund transactions plus a terminal valuation into the
// cash-flow series the XIRR solver consumes: each Addition becomes a negative
// flow, each Withdrawal a positive one, and one synthetic positive flow at
// asOf carries the current portfolio value as a notional liquidation.
//
// The series is sorted ascending by date; flows on the same day keep their
// input-relative order. The solver is date-based, so within-day order does
// not affect the result.
func CashFlows(txs []FundTransaction, currentValue decimal.Decimal, asOf date.Date) []CashFlow {
	flows := make([]CashFlow, 0, len(txs)+1)
	for _, t := range txs {
		flows = append(flows, CashFlow{Date: t.Date, Amount: t.Signed()})
	}
	flows = append(flows, CashFlow{Date: asOf, Amount: currentValue})

	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].Date.Before(flows[j].Date)
	})
	return flows
}

// Report is the money-weighted return of an account: the annualized XIRR rate
// plus the non-date-based totals derived from the same transactions. It is
// recomputed on every call and never persisted.
type Report struct {
	AsOf         date.Date
	Rate         Percent // annualized money-weighted return
	Invested     Money   // sum of Addition amounts
	Withdrawn    Money   // sum of Withdrawal amounts
	NetInvested  Money   // Invested - Withdrawn
	CurrentValue Money
	Gain         Money   // CurrentValue - NetInvested
	GainPercent  Percent // Gain / NetInvested, 0 when NetInvested <= 0
	Residual     float64 // |NPV| at the reported rate; below XIRRTolerance when converged
}

// NewReport aggregates the transactions into a cash-flow series, solves for
// the XIRR, and computes the derived totals. currentValue supplies both the
// terminal cash flow and the valuation side of the totals.
//
// An account with no transactions has no meaningful return: the report then
// carries rate 0 and zero-filled totals (the gain degenerates to the raw
// current value) and the solver is never invoked.
func NewReport(txs []FundTransaction, currentValue Money, asOf date.Date) *Report {
	currency := currentValue.Currency()

	invested, withdrawn := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Kind {
		case Addition:
			invested = invested.Add(t.Amount)
		case Withdrawal:
			withdrawn = withdrawn.Add(t.Amount)
		}
	}
	net := invested.Sub(withdrawn)
	gain := currentValue.Decimal().Sub(net)

	rep := &Report{
		AsOf:         asOf,
		Invested:     M(invested, currency),
		Withdrawn:    M(withdrawn, currency),
		NetInvested:  M(net, currency),
		CurrentValue: currentValue,
		Gain:         M(gain, currency),
	}
	if net.IsPositive() {
		rep.GainPercent = PercentOf(gain.InexactFloat64(), net.InexactFloat64())
	}

	if len(txs) == 0 {
		// Only the terminal valuation: no activity, no rate.
		return rep
	}

	flows := CashFlows(txs, currentValue.Decimal(), asOf)
	rate, residual := SolveXIRR(flows)
	rep.Rate = Percent(rate)
	rep.Residual = residual
	return rep
}
