package finbook

import (
	"bytes"
	"strings"
	"testing"
)

func sampleBook() *Book {
	b := NewBook()
	b.Append(
		NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer"),
		NewWithdrawal("acct-1", day("2024-03-05"), dec("12000"), "payout"),
		TradeGain{
			Symbol: "INFY", Instrument: "EQ",
			EntryDate: day("2024-02-01"), ExitDate: day("2024-06-01"),
			Quantity: dec("10"), BuyValue: dec("14000"), SellValue: dec("15500"), Profit: dec("1500"),
		},
		DividendRecord{
			Symbol: "INFY", ISIN: "INE009A01021", ExDate: day("2024-05-20"),
			Quantity: dec("10"), PerShare: dec("18"), NetAmount: dec("180"),
		},
	)
	return b
}

func TestBookRoundTrip(t *testing.T) {
	want := sampleBook()

	var buf bytes.Buffer
	if err := EncodeBook(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.FundTransactions) != len(want.FundTransactions) {
		t.Fatalf("fund transactions = %d, want %d", len(got.FundTransactions), len(want.FundTransactions))
	}
	for i := range want.FundTransactions {
		if !got.FundTransactions[i].Equal(want.FundTransactions[i]) {
			t.Errorf("fund tx[%d] = %+v, want %+v", i, got.FundTransactions[i], want.FundTransactions[i])
		}
	}
	if len(got.TradeGains) != 1 || !got.TradeGains[0].Equal(want.TradeGains[0]) {
		t.Errorf("trade gains = %+v, want %+v", got.TradeGains, want.TradeGains)
	}
	if len(got.Dividends) != 1 || !got.Dividends[0].Equal(want.Dividends[0]) {
		t.Errorf("dividends = %+v, want %+v", got.Dividends, want.Dividends)
	}
}

func TestEncodeRecordDiscriminatorFirst(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeRecord(&buf, NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer")); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	if !strings.HasPrefix(line, `{"record":"fund-transaction",`) {
		t.Errorf("line = %s, want the record discriminator first", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("want one record per line")
	}
	if strings.Contains(line, `"50000"`) {
		t.Errorf("line = %s, want amounts as JSON numbers", line)
	}
}

func TestBookAppendKeepsChronologicalOrder(t *testing.T) {
	b := NewBook()
	b.Append(
		NewAddition("acct-1", day("2024-06-01"), dec("100"), "late"),
		NewAddition("acct-1", day("2024-01-10"), dec("200"), "early"),
		NewAddition("acct-1", day("2024-01-10"), dec("300"), "early too"),
	)
	if b.FundTransactions[0].Description != "early" {
		t.Errorf("first = %q, want the earliest record", b.FundTransactions[0].Description)
	}
	// Stable: same-day records keep their insertion order.
	if b.FundTransactions[1].Description != "early too" {
		t.Errorf("second = %q, want same-day insertion order preserved", b.FundTransactions[1].Description)
	}
	if b.FundTransactions[2].Description != "late" {
		t.Errorf("third = %q, want the latest record last", b.FundTransactions[2].Description)
	}
}

func TestDecodeBookErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown record type", `{"record":"share-split","date":"2024-01-10"}`},
		{"not JSON", `this is not a record`},
		{"wrong shape", `{"record":"fund-transaction","date":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBook(strings.NewReader(tt.in)); err == nil {
				t.Error("want an error")
			}
		})
	}
}

func TestDecodeBookSkipsEmptyLines(t *testing.T) {
	in := `{"record":"fund-transaction","account":"acct-1","date":"2024-01-10","kind":"addition","amount":50000}

{"record":"fund-transaction","account":"acct-1","date":"2024-03-05","kind":"withdrawal","amount":12000}
`
	b, err := DecodeBook(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.FundTransactions) != 2 {
		t.Fatalf("fund transactions = %d, want 2", len(b.FundTransactions))
	}
}
