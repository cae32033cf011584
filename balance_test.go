package kharcha

import "testing"

func testLedger() *Ledger {
	return &Ledger{
		categories: []Category{
			{ID: 1, Type: Account, Name: "HDFC", InitialBalance: A(100)},
			{ID: 2, Type: Account, Name: "SBI", InitialBalance: A(500)},
			{ID: 3, Type: Section, Name: "Food", Icon: "🍕"},
		},
		transactions: []Transaction{
			{ID: 10, Type: Expense, AccountID: 1, CategoryID: 3, Amount: A(30), Date: MustParseDate("2024-01-05")},
			{ID: 11, Type: Income, AccountID: 1, Amount: A(50), Date: MustParseDate("2024-01-10")},
			{ID: 12, Type: Transfer, FromAccountID: 1, ToAccountID: 2, Amount: A(40), Date: MustParseDate("2024-01-15")},
		},
		tags: append([]string(nil), DefaultTags...),
	}
}

func TestLedger_Balance(t *testing.T) {
	l := testLedger()

	testCases := []struct {
		name    string
		account ID
		want    Amount
	}{
		{
			name:    "expense income and outgoing transfer",
			account: 1,
			want:    A(80), // 100 - 30 + 50 - 40
		},
		{
			name:    "incoming transfer only",
			account: 2,
			want:    A(540), // 500 + 40
		},
		{
			name:    "unknown account folds to zero",
			account: 99,
			want:    A(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Balance(tc.account); !got.Equal(tc.want) {
				t.Errorf("Balance(%d) = %s, want %s", tc.account, got, tc.want)
			}
		})
	}
}

func TestLedger_Balance_IsRecomputedFromLog(t *testing.T) {
	l := testLedger()

	if got := l.Balance(1); !got.Equal(A(80)) {
		t.Fatalf("Balance(1) = %s, want 80.00", got)
	}

	// Deleting a past entry must change the folded balance on the next read.
	if !l.DeleteTransaction(10) {
		t.Fatal("DeleteTransaction(10) = false")
	}
	if got := l.Balance(1); !got.Equal(A(110)) {
		t.Errorf("Balance(1) after delete = %s, want 110.00", got)
	}
}

func TestLedger_TotalBalance_TransferInvariant(t *testing.T) {
	l := testLedger()

	// 100 + 500 - 30 + 50; the transfer moves money between accounts
	// without changing the total.
	want := A(620)
	if got := l.TotalBalance(); !got.Equal(want) {
		t.Fatalf("TotalBalance() = %s, want %s", got, want)
	}

	if !l.DeleteTransaction(12) {
		t.Fatal("DeleteTransaction(12) = false")
	}
	if got := l.TotalBalance(); !got.Equal(want) {
		t.Errorf("TotalBalance() without transfer = %s, want %s", got, want)
	}
}
