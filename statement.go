package finbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/finbook/finbook/date"
	"github.com/shopspring/decimal"
)

// this file turns raw ledger/statement exports into typed records. Exports
// are noisy by nature: footer rows, seed rows, locale-formatted numbers.
// Malformed rows are skipped, never fatal; unparseable amounts count as zero.

// LedgerRow is one raw row of a bank/broker ledger export. All fields are
// strings exactly as exported; the row only lives long enough to be
// normalized and is never persisted.
type LedgerRow struct {
	Particulars string
	PostingDate string
	CostCenter  string
	VoucherType string
	Debit       string
	Credit      string
	NetBalance  string
}

// openingBalanceParticulars marks the running-balance seed row of an export,
// which is not a transaction.
const openingBalanceParticulars = "Opening Balance"

// DefaultExcludedVouchers are the voucher types that represent internal
// ledger mechanics rather than cash movement.
var DefaultExcludedVouchers = []string{"Book Voucher", "Delivery Voucher"}

// Normalizer turns ledger rows into fund transaction candidates for one
// account.
type Normalizer struct {
	Account string
	// ExcludedVouchers lists the voucher types to discard. Rows whose
	// voucher type matches any entry yield no transaction.
	ExcludedVouchers []string
}

// NewNormalizer creates a Normalizer for the account with the default voucher
// exclusions.
func NewNormalizer(account string) *Normalizer {
	return &Normalizer{Account: account, ExcludedVouchers: DefaultExcludedVouchers}
}

// Normalize parses one ledger row into zero, one or two fund transactions.
// A row normally carries either a debit or a credit, but the export format
// allows both: a positive debit yields a Withdrawal, a positive credit an
// Addition. Rows that are filtered out, that fail to date-parse, or that
// carry no positive amount yield nothing.
func (n *Normalizer) Normalize(row LedgerRow) []FundTransaction {
	for _, v := range n.ExcludedVouchers {
		if row.VoucherType == v {
			return nil
		}
	}
	if row.Particulars == openingBalanceParticulars {
		return nil
	}

	day, err := date.Parse(row.PostingDate)
	if err != nil {
		// header/footer noise row
		return nil
	}

	var txs []FundTransaction
	if debit := parseAmount(row.Debit); debit.IsPositive() {
		txs = append(txs, NewWithdrawal(n.Account, day, debit, row.Particulars))
	}
	if credit := parseAmount(row.Credit); credit.IsPositive() {
		txs = append(txs, NewAddition(n.Account, day, credit, row.Particulars))
	}
	return txs
}

// NormalizeAll normalizes every row, silently dropping the ones that are not
// transactions.
func (n *Normalizer) NormalizeAll(rows []LedgerRow) []FundTransaction {
	var txs []FundTransaction
	for _, row := range rows {
		txs = append(txs, n.Normalize(row)...)
	}
	return txs
}

// parseAmount reads a decimal amount from an export field. Exports use
// thousands separators and stray spaces; anything that still fails to parse
// is zero, not an error.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ledger export column names, after header normalization.
const (
	colParticulars = "particulars"
	colPostingDate = "posting_date"
	colCostCenter  = "cost_center"
	colVoucherType = "voucher_type"
	colDebit       = "debit"
	colCredit      = "credit"
	colNetBalance  = "net_balance"
)

// ReadLedgerCSV reads a ledger export. Columns are identified by name and may
// appear in any order; the header row is required. Rows shorter than the
// header are skipped.
func ReadLedgerCSV(r io.Reader) ([]LedgerRow, error) {
	records, index, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	field := func(rec []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]LedgerRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, LedgerRow{
			Particulars: field(rec, colParticulars),
			PostingDate: field(rec, colPostingDate),
			CostCenter:  field(rec, colCostCenter),
			VoucherType: field(rec, colVoucherType),
			Debit:       field(rec, colDebit),
			Credit:      field(rec, colCredit),
			NetBalance:  field(rec, colNetBalance),
		})
	}
	return rows, nil
}

// ReadTradeGainsCSV reads a broker P&L export into trade gain records.
// Expected columns (any order): symbol, instrument_type, entry_date,
// exit_date, quantity, buy_value, sell_value, profit. Rows with unparseable
// dates are skipped.
func ReadTradeGainsCSV(r io.Reader) ([]TradeGain, error) {
	records, index, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	field := fieldFunc(index)

	var gains []TradeGain
	for _, rec := range records {
		entry, err := date.Parse(field(rec, "entry_date"))
		if err != nil {
			continue
		}
		exit, err := date.Parse(field(rec, "exit_date"))
		if err != nil {
			continue
		}
		gains = append(gains, TradeGain{
			Symbol:     field(rec, "symbol"),
			Instrument: field(rec, "instrument_type"),
			EntryDate:  entry,
			ExitDate:   exit,
			Quantity:   parseAmount(field(rec, "quantity")),
			BuyValue:   parseAmount(field(rec, "buy_value")),
			SellValue:  parseAmount(field(rec, "sell_value")),
			Profit:     parseAmount(field(rec, "profit")),
		})
	}
	return gains, nil
}

// ReadDividendsCSV reads a broker dividend export into dividend records.
// Expected columns (any order): symbol, isin, ex_date, quantity,
// dividend_per_share, net_dividend_amount. Rows with unparseable dates are
// skipped.
func ReadDividendsCSV(r io.Reader) ([]DividendRecord, error) {
	records, index, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	field := fieldFunc(index)

	var dividends []DividendRecord
	for _, rec := range records {
		exDay, err := date.Parse(field(rec, "ex_date"))
		if err != nil {
			continue
		}
		dividends = append(dividends, DividendRecord{
			Symbol:    field(rec, "symbol"),
			ISIN:      field(rec, "isin"),
			ExDate:    exDay,
			Quantity:  parseAmount(field(rec, "quantity")),
			PerShare:  parseAmount(field(rec, "dividend_per_share")),
			NetAmount: parseAmount(field(rec, "net_dividend_amount")),
		})
	}
	return dividends, nil
}

// readCSV reads all rows and maps normalized header names to column indexes.
func readCSV(r io.Reader) (records [][]string, index map[string]int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports routinely have ragged footer rows

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	index = make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}

	records, err = cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV rows: %w", err)
	}
	return records, index, nil
}

func fieldFunc(index map[string]int) func([]string, string) string {
	return func(rec []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
}

// normalizeHeader maps an exported column title to its canonical name:
// "Posting Date" and "posting_date" are the same column.
func normalizeHeader(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ".", "")
	return name
}
