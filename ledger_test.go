package kharcha

import (
	"reflect"
	"testing"
)

func TestLedger_AddCategory(t *testing.T) {
	l := NewLedger()

	acc, err := l.AddCategory(Category{Type: Account, Name: "HDFC"})
	if err != nil {
		t.Fatal(err)
	}
	if acc.ID.IsZero() {
		t.Error("AddCategory did not mint an id")
	}
	if acc.Order != 0 {
		t.Errorf("Order = %d, want 0", acc.Order)
	}

	sec, err := l.AddCategory(Category{Type: Section, Name: "Food"})
	if err != nil {
		t.Fatal(err)
	}
	if sec.Order != 1 {
		t.Errorf("Order = %d, want 1", sec.Order)
	}

	if _, err := l.AddCategory(Category{Type: Account}); err == nil {
		t.Error("expected error for a nameless category")
	}
	if _, err := l.AddCategory(Category{Type: "wallet", Name: "x"}); err == nil {
		t.Error("expected error for an unknown type")
	}
}

func TestLedger_UpdateCategory_PreservesType(t *testing.T) {
	l := NewLedger()
	acc, err := l.AddCategory(Category{Type: Account, Name: "HDFC"})
	if err != nil {
		t.Fatal(err)
	}

	// An update cannot turn an account into a section.
	acc.Type = Section
	acc.Name = "Renamed"
	if err := l.UpdateCategory(acc); err != nil {
		t.Fatal(err)
	}

	got := l.Category(acc.ID)
	if got.Type != Account {
		t.Errorf("Type = %s, want account", got.Type)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", got.Name)
	}

	if err := l.UpdateCategory(Category{ID: 999, Type: Account, Name: "x"}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLedger_Reorder(t *testing.T) {
	l := &Ledger{
		categories: []Category{
			{ID: 1, Type: Account, Name: "A", Order: 0},
			{ID: 2, Type: Account, Name: "B", Order: 1},
			{ID: 3, Type: Account, Name: "C", Order: 2},
		},
	}

	l.Reorder([]ID{3, 1, 2})

	var got []string
	for _, c := range l.Accounts() {
		got = append(got, c.Name)
	}
	if !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Errorf("Accounts after reorder = %v", got)
	}
}

func TestLedger_AddTransaction_KeepsLogChronological(t *testing.T) {
	l := NewLedger()
	acc, err := l.AddCategory(Category{Type: Account, Name: "Cash"})
	if err != nil {
		t.Fatal(err)
	}

	for _, date := range []string{"2024-01-20", "2024-01-05", "2024-01-10"} {
		if _, err := l.AddTransaction(Transaction{Type: Expense, AccountID: acc.ID, Amount: A(1), Date: MustParseDate(date)}); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, tx := range l.Transactions() {
		got = append(got, tx.When().String())
	}
	want := []string{"2024-01-05", "2024-01-10", "2024-01-20"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("log order = %v, want %v", got, want)
	}

	if oldest := l.OldestTransactionDate(); oldest != MustParseDate("2024-01-05") {
		t.Errorf("OldestTransactionDate = %s", oldest)
	}
}

func TestLedger_ReplaceTransaction(t *testing.T) {
	l := NewLedger()
	acc, err := l.AddCategory(Category{Type: Account, Name: "Cash"})
	if err != nil {
		t.Fatal(err)
	}
	tx, err := l.AddTransaction(Transaction{Type: Expense, AccountID: acc.ID, Amount: A(10), Date: MustParseDate("2024-01-10")})
	if err != nil {
		t.Fatal(err)
	}

	tx.Amount = A(25)
	tx.Date = MustParseDate("2024-01-02")
	if err := l.ReplaceTransaction(tx); err != nil {
		t.Fatal(err)
	}

	got := l.Transaction(tx.ID)
	if !got.Amount.Equal(A(25)) || got.When() != MustParseDate("2024-01-02") {
		t.Errorf("replaced tx = %+v", got)
	}

	if err := l.ReplaceTransaction(Transaction{ID: 999, Type: Expense, AccountID: acc.ID, Amount: A(1)}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLedger_TransactionFilters(t *testing.T) {
	l := &Ledger{
		transactions: []Transaction{
			{ID: 10, Type: Expense, AccountID: 1, Amount: A(10), Date: MustParseDate("2024-01-05")},
			{ID: 11, Type: Income, AccountID: 2, Amount: A(20), Date: MustParseDate("2024-01-06")},
			{ID: 12, Type: Transfer, FromAccountID: 1, ToAccountID: 2, Amount: A(30), Date: MustParseDate("2024-01-07")},
		},
	}

	collect := func(filters ...func(Transaction) bool) []ID {
		var ids []ID
		for _, tx := range l.Transactions(filters...) {
			ids = append(ids, tx.ID)
		}
		return ids
	}

	testCases := []struct {
		name    string
		filters []func(Transaction) bool
		want    []ID
	}{
		{"accept all", nil, []ID{10, 11, 12}},
		{"by type", []func(Transaction) bool{ByType(Expense)}, []ID{10}},
		{"by account matches transfer legs", []func(Transaction) bool{ByAccount(2)}, []ID{11, 12}},
		{"filters compose with AND", []func(Transaction) bool{ByAccount(1), ByType(Transfer)}, []ID{12}},
		{"zero range accepts all", []func(Transaction) bool{ByRange(Range{})}, []ID{10, 11, 12}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := collect(tc.filters...); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
