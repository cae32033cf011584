package kharcha

import "testing"

func TestLedger_ReconcileInitialBalance(t *testing.T) {
	l := &Ledger{
		categories: []Category{
			{ID: 1, Type: Account, Name: "Cash", InitialBalance: A(200)},
		},
		transactions: []Transaction{
			{ID: 10, Type: Expense, AccountID: 1, Amount: A(20), Date: MustParseDate("2024-03-01")},
		},
	}

	// Folded balance is 180. The user counted 150 in their wallet, so the
	// initial balance must absorb the 30 difference.
	if got := l.ReconcileInitialBalance(1, A(150)); !got.Equal(A(170)) {
		t.Fatalf("ReconcileInitialBalance = %s, want 170.00", got)
	}

	if err := l.SetAccountBalance(1, A(150)); err != nil {
		t.Fatal(err)
	}
	if got := l.Balance(1); !got.Equal(A(150)) {
		t.Errorf("Balance after reconciliation = %s, want 150.00", got)
	}

	// History is untouched.
	if tx := l.Transaction(10); tx == nil || !tx.Amount.Equal(A(20)) {
		t.Error("reconciliation must not rewrite transactions")
	}
}

func TestLedger_ReconcileTwiceIsStable(t *testing.T) {
	l := &Ledger{
		categories: []Category{
			{ID: 1, Type: Account, Name: "Cash", InitialBalance: A(200)},
		},
		transactions: []Transaction{
			{ID: 10, Type: Expense, AccountID: 1, Amount: A(20), Date: MustParseDate("2024-03-01")},
		},
	}

	if err := l.SetAccountBalance(1, A(150)); err != nil {
		t.Fatal(err)
	}
	if err := l.SetAccountBalance(1, A(150)); err != nil {
		t.Fatal(err)
	}
	if got := l.Balance(1); !got.Equal(A(150)) {
		t.Errorf("Balance after double reconciliation = %s, want 150.00", got)
	}
}

func TestLedger_SetAccountBalance_Errors(t *testing.T) {
	l := &Ledger{
		categories: []Category{
			{ID: 3, Type: Section, Name: "Food"},
		},
	}

	if err := l.SetAccountBalance(99, A(10)); err == nil {
		t.Error("expected error for unknown account")
	}
	if err := l.SetAccountBalance(3, A(10)); err == nil {
		t.Error("expected error for a section id")
	}
}
