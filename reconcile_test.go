package finbook

import "testing"

func TestReconcilePartition(t *testing.T) {
	existing := []FundTransaction{
		NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer"),
		NewWithdrawal("acct-1", day("2024-03-05"), dec("12000"), "payout"),
	}
	candidates := []FundTransaction{
		NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer"), // dup
		NewAddition("acct-1", day("2024-02-01"), dec("30000"), "NEFT transfer"), // new
		NewWithdrawal("acct-1", day("2024-03-05"), dec("12000"), "payout"),      // dup
		NewWithdrawal("acct-1", day("2024-04-05"), dec("12000"), "payout"),      // new
	}

	res := Reconcile(candidates, existing, KeyOfFundTransaction)

	if res.Total() != len(candidates) {
		t.Fatalf("Total() = %d, want %d", res.Total(), len(candidates))
	}
	if res.DuplicateCount() != 2 || res.UniqueCount() != 2 {
		t.Fatalf("partition = %d dup / %d unique, want 2/2", res.DuplicateCount(), res.UniqueCount())
	}
	// Order of the candidates is preserved inside each part.
	if !res.Duplicates[0].Equal(candidates[0]) || !res.Duplicates[1].Equal(candidates[2]) {
		t.Error("duplicates do not preserve candidate order")
	}
	if !res.Uniques[0].Equal(candidates[1]) || !res.Uniques[1].Equal(candidates[3]) {
		t.Error("uniques do not preserve candidate order")
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	existing := []FundTransaction{
		NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer"),
	}
	candidates := []FundTransaction{
		NewAddition("acct-1", day("2024-01-10"), dec("50000"), "NEFT transfer"),
		NewAddition("acct-1", day("2024-02-01"), dec("30000"), "NEFT transfer"),
	}

	first := Reconcile(candidates, existing, KeyOfFundTransaction)
	// Re-importing the same export after appending the uniques must find
	// everything already recorded.
	second := Reconcile(candidates, append(existing, first.Uniques...), KeyOfFundTransaction)
	if second.UniqueCount() != 0 {
		t.Errorf("second pass found %d uniques, want 0", second.UniqueCount())
	}
	if second.DuplicateCount() != len(candidates) {
		t.Errorf("second pass found %d duplicates, want %d", second.DuplicateCount(), len(candidates))
	}
}

func TestFundTransactionKey(t *testing.T) {
	base := NewAddition("acct-1", day("2024-01-10"), dec("1500"), "NEFT transfer")

	t.Run("ignores description and account", func(t *testing.T) {
		other := NewAddition("acct-2", day("2024-01-10"), dec("1500"), "some other label")
		if KeyOfFundTransaction(base) != KeyOfFundTransaction(other) {
			t.Error("description and account must not be part of the identity")
		}
	})
	t.Run("amounts compare numerically", func(t *testing.T) {
		other := NewAddition("acct-1", day("2024-01-10"), dec("1500.00"), "NEFT transfer")
		if KeyOfFundTransaction(base) != KeyOfFundTransaction(other) {
			t.Error("1500 and 1500.00 are the same amount")
		}
	})
	t.Run("kind is part of the identity", func(t *testing.T) {
		other := NewWithdrawal("acct-1", day("2024-01-10"), dec("1500"), "NEFT transfer")
		if KeyOfFundTransaction(base) == KeyOfFundTransaction(other) {
			t.Error("an addition and a withdrawal are never the same event")
		}
	})
}

func TestTradeGainKey(t *testing.T) {
	base := TradeGain{
		Symbol: "INFY", Instrument: "EQ",
		EntryDate: day("2024-02-01"), ExitDate: day("2024-06-01"),
		Quantity: dec("10"), BuyValue: dec("14000"), SellValue: dec("15500"), Profit: dec("1500"),
	}
	same := base
	same.Quantity = dec("10.000000")
	if KeyOfTradeGain(base) != KeyOfTradeGain(same) {
		t.Error("numerically equal quantities must produce the same key")
	}

	diff := base
	diff.SellValue = dec("15501")
	if KeyOfTradeGain(base) == KeyOfTradeGain(diff) {
		t.Error("every value field is part of the identity")
	}
}

func TestDividendKey(t *testing.T) {
	base := DividendRecord{
		Symbol: "INFY", ISIN: "INE009A01021", ExDate: day("2024-05-20"),
		Quantity: dec("10"), PerShare: dec("18"), NetAmount: dec("180"),
	}
	same := base
	same.NetAmount = dec("180.00")
	if KeyOfDividend(base) != KeyOfDividend(same) {
		t.Error("numerically equal amounts must produce the same key")
	}

	diff := base
	diff.ISIN = "INE009A01022"
	if KeyOfDividend(base) == KeyOfDividend(diff) {
		t.Error("the ISIN is part of the identity")
	}
}
