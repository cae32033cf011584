package kharcha

import (
	"encoding/json"
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			tx:   Transaction{Type: Expense, AccountID: 1, Amount: A(10)},
		},
		{
			name:    "zero amount",
			tx:      Transaction{Type: Expense, AccountID: 1, Amount: A(0)},
			wantErr: true,
		},
		{
			name:    "negative amount",
			tx:      Transaction{Type: Expense, AccountID: 1, Amount: A(-5)},
			wantErr: true,
		},
		{
			name:    "expense without account",
			tx:      Transaction{Type: Expense, Amount: A(10)},
			wantErr: true,
		},
		{
			name: "valid transfer",
			tx:   Transaction{Type: Transfer, FromAccountID: 1, ToAccountID: 2, Amount: A(10)},
		},
		{
			name:    "transfer to the same account",
			tx:      Transaction{Type: Transfer, FromAccountID: 1, ToAccountID: 1, Amount: A(10)},
			wantErr: true,
		},
		{
			name:    "transfer missing a leg",
			tx:      Transaction{Type: Transfer, FromAccountID: 1, Amount: A(10)},
			wantErr: true,
		},
		{
			name:    "unknown type",
			tx:      Transaction{Type: "loan", AccountID: 1, Amount: A(10)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tx.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTransaction_Validate_FillsDate(t *testing.T) {
	tx := Transaction{Type: Income, AccountID: 1, Amount: A(10)}
	if err := tx.Validate(); err != nil {
		t.Fatal(err)
	}
	if !tx.Date.IsToday() {
		t.Errorf("Date = %s, want today", tx.Date)
	}
}

func TestTransaction_DecodeTolerance(t *testing.T) {
	// Records written by older or buggy clients: string ids, null amounts,
	// plain garbage in numeric fields. Decoding must absorb all of it.
	testCases := []struct {
		name       string
		payload    string
		wantID     ID
		wantAmount Amount
	}{
		{
			name:       "well formed",
			payload:    `{"id":1700000000000,"type":"expense","accountId":1,"amount":12.5,"date":"2024-01-05"}`,
			wantID:     1700000000000,
			wantAmount: A(12.5),
		},
		{
			name:       "id stored as a string",
			payload:    `{"id":"1700000000000","type":"expense","accountId":1,"amount":12.5,"date":"2024-01-05"}`,
			wantID:     1700000000000,
			wantAmount: A(12.5),
		},
		{
			name:       "amount stored as a string",
			payload:    `{"id":7,"type":"expense","accountId":1,"amount":"12.5","date":"2024-01-05"}`,
			wantID:     7,
			wantAmount: A(12.5),
		},
		{
			name:       "null amount decodes to zero",
			payload:    `{"id":7,"type":"expense","accountId":1,"amount":null,"date":"2024-01-05"}`,
			wantID:     7,
			wantAmount: A(0),
		},
		{
			name:       "garbage amount decodes to zero",
			payload:    `{"id":7,"type":"expense","accountId":1,"amount":"oops","date":"2024-01-05"}`,
			wantID:     7,
			wantAmount: A(0),
		},
		{
			name:       "garbage id decodes to zero",
			payload:    `{"id":{"nested":true},"type":"expense","accountId":1,"amount":5,"date":"2024-01-05"}`,
			wantID:     0,
			wantAmount: A(5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tx Transaction
			if err := json.Unmarshal([]byte(tc.payload), &tx); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if tx.ID != tc.wantID {
				t.Errorf("ID = %v, want %v", tx.ID, tc.wantID)
			}
			if !tx.Amount.Equal(tc.wantAmount) {
				t.Errorf("Amount = %s, want %s", tx.Amount, tc.wantAmount)
			}
		})
	}
}

func TestTransaction_MarshalJSON_TypeDependentFields(t *testing.T) {
	expense := Transaction{ID: 7, Type: Expense, AccountID: 1, CategoryID: 3, Amount: A(12.5), Date: MustParseDate("2024-01-05")}
	raw, err := json.Marshal(expense)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":7,"type":"expense","accountId":1,"categoryId":3,"amount":12.5,"date":"2024-01-05"}`
	if string(raw) != want {
		t.Errorf("expense = %s, want %s", raw, want)
	}

	transfer := Transaction{ID: 8, Type: Transfer, FromAccountID: 1, ToAccountID: 2, Amount: A(40), Date: MustParseDate("2024-01-15"), Note: "rent"}
	raw, err = json.Marshal(transfer)
	if err != nil {
		t.Fatal(err)
	}
	want = `{"id":8,"type":"transfer","fromAccountId":1,"toAccountId":2,"amount":40,"date":"2024-01-15","note":"rent"}`
	if string(raw) != want {
		t.Errorf("transfer = %s, want %s", raw, want)
	}
}

func TestTransaction_HasTag(t *testing.T) {
	tx := Transaction{Tags: []string{"Food", "Fun"}}
	if !tx.HasTag("food") {
		t.Error("HasTag(food) = false")
	}
	if tx.HasTag("Bills") {
		t.Error("HasTag(Bills) = true")
	}
}
