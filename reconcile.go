package finbook

import (
	"github.com/finbook/finbook/date"
	"github.com/shopspring/decimal"
)

// A record's economic identity is exactly its key tuple: two records with an
// equal key are the same economic event no matter what their free-text fields
// say. This is a business rule inherited from the store's uniqueness
// constraints, not a heuristic; there is deliberately no fuzzy matching here.
//
// Dates in keys are day-granular by construction (date.Date), which absorbs
// time-of-day and serialization differences between a freshly parsed CSV date
// and a stored one. Amounts are rendered canonically so that numerically
// equal decimals compare equal regardless of their textual origin.

// Result is the partition produced by Reconcile. Duplicates and Uniques each
// preserve the original order of the candidates; together they are exactly
// the candidate set.
type Result[R any] struct {
	Duplicates []R
	Uniques    []R
}

// Total returns the number of candidate records that were classified.
func (r Result[R]) Total() int { return len(r.Duplicates) + len(r.Uniques) }

// DuplicateCount returns the number of candidates already present in the
// existing set.
func (r Result[R]) DuplicateCount() int { return len(r.Duplicates) }

// UniqueCount returns the number of candidates not present in the existing set.
func (r Result[R]) UniqueCount() int { return len(r.Uniques) }

// Reconcile partitions candidates into duplicates and uniques by set
// membership of their key in the existing set. It classifies only: whether to
// persist the uniques alone or push everything and let the store's uniqueness
// constraint reject duplicates at write time is the caller's policy.
//
// A candidate whose key also appears earlier among the candidates themselves
// is still classified against the existing set only; the store snapshot is
// the single source of truth for duplicate status.
func Reconcile[R any, K comparable](candidates, existing []R, key func(R) K) Result[R] {
	seen := make(map[K]struct{}, len(existing))
	for _, r := range existing {
		seen[key(r)] = struct{}{}
	}

	res := Result[R]{}
	for _, c := range candidates {
		if _, ok := seen[key(c)]; ok {
			res.Duplicates = append(res.Duplicates, c)
		} else {
			res.Uniques = append(res.Uniques, c)
		}
	}
	return res
}

// canonAmount renders a decimal with a fixed scale so that numerically equal
// values map to the same key fragment. Six places covers currency amounts and
// fractional quantities alike.
func canonAmount(d decimal.Decimal) string { return d.StringFixed(6) }

// FundTransactionKey is the identity tuple of a fund transaction:
// (day, amount, kind). The description and the account-internal id are
// irrelevant to duplicate status.
type FundTransactionKey struct {
	Day    date.Date
	Amount string
	Kind   Kind
}

// KeyOfFundTransaction is the key function for fund transaction reconciliation.
func KeyOfFundTransaction(t FundTransaction) FundTransactionKey {
	return FundTransactionKey{Day: t.Date, Amount: canonAmount(t.Amount), Kind: t.Kind}
}

// TradeGainKey is the identity tuple of a realized profit/loss record.
type TradeGainKey struct {
	Symbol     string
	Instrument string
	EntryDay   date.Date
	ExitDay    date.Date
	Quantity   string
	BuyValue   string
	SellValue  string
	Profit     string
}

// KeyOfTradeGain is the key function for trade gain reconciliation.
func KeyOfTradeGain(t TradeGain) TradeGainKey {
	return TradeGainKey{
		Symbol:     t.Symbol,
		Instrument: t.Instrument,
		EntryDay:   t.EntryDate,
		ExitDay:    t.ExitDate,
		Quantity:   canonAmount(t.Quantity),
		BuyValue:   canonAmount(t.BuyValue),
		SellValue:  canonAmount(t.SellValue),
		Profit:     canonAmount(t.Profit),
	}
}

// DividendKey is the identity tuple of a dividend record.
type DividendKey struct {
	Symbol    string
	ISIN      string
	ExDay     date.Date
	Quantity  string
	PerShare  string
	NetAmount string
}

// KeyOfDividend is the key function for dividend reconciliation.
func KeyOfDividend(t DividendRecord) DividendKey {
	return DividendKey{
		Symbol:    t.Symbol,
		ISIN:      t.ISIN,
		ExDay:     t.ExDate,
		Quantity:  canonAmount(t.Quantity),
		PerShare:  canonAmount(t.PerShare),
		NetAmount: canonAmount(t.NetAmount),
	}
}
