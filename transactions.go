package finbook

import (
	"github.com/finbook/finbook/date"
	"github.com/shopspring/decimal"
)

// RecordType is a typed string identifying the kind of a book record.
type RecordType string

// Record types used in the book.
const (
	RecFundTransaction RecordType = "fund-transaction"
	RecTradeGain       RecordType = "trade-gain"
	RecDividend        RecordType = "dividend"
)

// Kind is the direction of a fund transaction. The amount of a transaction is
// always positive; its direction lives here, never in the amount's sign.
type Kind string

const (
	// Addition is money moving from the investor into the account.
	Addition Kind = "addition"
	// Withdrawal is money moving from the account back to the investor.
	Withdrawal Kind = "withdrawal"
)

// Record is the common interface of everything stored in a book.
type Record interface {
	What() RecordType // What returns the record kind.
	When() date.Date  // When returns the date the record is keyed on.
}

// FundTransaction is a cash movement between the investor and the brokerage
// account. Amount is strictly positive; Kind carries the direction.
type FundTransaction struct {
	Account     string          `json:"account,omitempty"`
	Date        date.Date       `json:"date"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// NewAddition creates a fund transaction for money flowing into the account.
func NewAddition(account string, day date.Date, amount decimal.Decimal, description string) FundTransaction {
	return FundTransaction{Account: account, Date: day, Kind: Addition, Amount: amount, Description: description}
}

// NewWithdrawal creates a fund transaction for money flowing back to the investor.
func NewWithdrawal(account string, day date.Date, amount decimal.Decimal, description string) FundTransaction {
	return FundTransaction{Account: account, Date: day, Kind: Withdrawal, Amount: amount, Description: description}
}

func (t FundTransaction) What() RecordType { return RecFundTransaction }
func (t FundTransaction) When() date.Date  { return t.Date }

func (t FundTransaction) Equal(o FundTransaction) bool {
	return t.Account == o.Account && t.Date == o.Date && t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) && t.Description == o.Description
}

// Signed returns the transaction amount from the investor's point of view:
// negative for an Addition (cash leaves the investor to fund the account),
// positive for a Withdrawal (cash returns to the investor).
func (t FundTransaction) Signed() decimal.Decimal {
	if t.Kind == Addition {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TradeGain is a realized profit/loss record for a closed position, as
// exported by the broker's P&L statement.
type TradeGain struct {
	Symbol     string          `json:"symbol"`
	Instrument string          `json:"instrument"`
	EntryDate  date.Date       `json:"entryDate"`
	ExitDate   date.Date       `json:"exitDate"`
	Quantity   decimal.Decimal `json:"quantity"`
	BuyValue   decimal.Decimal `json:"buyValue"`
	SellValue  decimal.Decimal `json:"sellValue"`
	Profit     decimal.Decimal `json:"profit"`
}

func (t TradeGain) What() RecordType { return RecTradeGain }
func (t TradeGain) When() date.Date  { return t.ExitDate }

func (t TradeGain) Equal(o TradeGain) bool {
	return t.Symbol == o.Symbol && t.Instrument == o.Instrument &&
		t.EntryDate == o.EntryDate && t.ExitDate == o.ExitDate &&
		t.Quantity.Equal(o.Quantity) && t.BuyValue.Equal(o.BuyValue) &&
		t.SellValue.Equal(o.SellValue) && t.Profit.Equal(o.Profit)
}

// DividendRecord is a dividend credit for a held security, as exported by the
// broker's dividend statement.
type DividendRecord struct {
	Symbol    string          `json:"symbol"`
	ISIN      string          `json:"isin"`
	ExDate    date.Date       `json:"exDate"`
	Quantity  decimal.Decimal `json:"quantity"`
	PerShare  decimal.Decimal `json:"perShare"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

func (t DividendRecord) What() RecordType { return RecDividend }
func (t DividendRecord) When() date.Date  { return t.ExDate }

func (t DividendRecord) Equal(o DividendRecord) bool {
	return t.Symbol == o.Symbol && t.ISIN == o.ISIN && t.ExDate == o.ExDate &&
		t.Quantity.Equal(o.Quantity) && t.PerShare.Equal(o.PerShare) &&
		t.NetAmount.Equal(o.NetAmount)
}
