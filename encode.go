package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

// The book is persisted as JSONL: one record per line, a "record" property as
// the kind discriminator. Human readable, append friendly, trivially merged.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Book is the set of previously recorded records for one account: the
// snapshot the reconciler classifies candidates against. It is plain
// in-memory data; reading and writing it is the caller's business.
type Book struct {
	FundTransactions []FundTransaction
	TradeGains       []TradeGain
	Dividends        []DividendRecord
}

// NewBook creates an empty book.
func NewBook() *Book { return &Book{} }

// Append adds records of any kind to the book and keeps each kind in
// chronological order. The sort is stable: records on the same day keep
// their insertion order.
func (b *Book) Append(recs ...Record) {
	for _, rec := range recs {
		switch v := rec.(type) {
		case FundTransaction:
			b.FundTransactions = append(b.FundTransactions, v)
		case TradeGain:
			b.TradeGains = append(b.TradeGains, v)
		case DividendRecord:
			b.Dividends = append(b.Dividends, v)
		}
	}
	b.stableSort()
}

func (b *Book) stableSort() {
	sort.SliceStable(b.FundTransactions, func(i, j int) bool {
		return b.FundTransactions[i].Date.Before(b.FundTransactions[j].Date)
	})
	sort.SliceStable(b.TradeGains, func(i, j int) bool {
		return b.TradeGains[i].ExitDate.Before(b.TradeGains[j].ExitDate)
	})
	sort.SliceStable(b.Dividends, func(i, j int) bool {
		return b.Dividends[i].ExDate.Before(b.Dividends[j].ExDate)
	})
}

// DecodeBook decodes a JSONL stream into a book. Empty lines are skipped;
// a line that cannot be identified or decoded is an error, because the book
// file is ours (unlike ledger exports, which are noisy and foreign).
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		var rec Record
		switch identifier.Record {
		case RecFundTransaction:
			var t FundTransaction
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid fund transaction %q: %w", string(line), err)
			}
			rec = t
		case RecTradeGain:
			var t TradeGain
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid trade gain %q: %w", string(line), err)
			}
			rec = t
		case RecDividend:
			var t DividendRecord
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid dividend %q: %w", string(line), err)
			}
			rec = t
		default:
			return nil, fmt.Errorf("unknown record type: %q", identifier.Record)
		}
		book.Append(rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return book, nil
}

// EncodeRecord marshals a single record to JSON, with the "record"
// discriminator first, and writes it followed by a newline.
func EncodeRecord(w io.Writer, rec Record) error {
	var v any
	switch t := rec.(type) {
	case FundTransaction:
		v = struct {
			Record RecordType `json:"record"`
			FundTransaction
		}{RecFundTransaction, t}
	case TradeGain:
		v = struct {
			Record RecordType `json:"record"`
			TradeGain
		}{RecTradeGain, t}
	case DividendRecord:
		v = struct {
			Record RecordType `json:"record"`
			DividendRecord
		}{RecDividend, t}
	default:
		return fmt.Errorf("unknown record type: %T", rec)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeBook persists the whole book in canonical form: fund transactions,
// then trade gains, then dividends, each kind in chronological order.
func EncodeBook(w io.Writer, b *Book) error {
	b.stableSort()
	for _, t := range b.FundTransactions {
		if err := EncodeRecord(w, t); err != nil {
			return err
		}
	}
	for _, t := range b.TradeGains {
		if err := EncodeRecord(w, t); err != nil {
			return err
		}
	}
	for _, t := range b.Dividends {
		if err := EncodeRecord(w, t); err != nil {
			return err
		}
	}
	return nil
}
