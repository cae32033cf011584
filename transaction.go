package kharcha

import (
	"encoding/json"
	"errors"
	"strings"
)

// TxType discriminates the three kinds of transactions.
type TxType string

const (
	Expense  TxType = "expense"
	Income   TxType = "income"
	Transfer TxType = "transfer"
)

// ParseTxType parses a transaction type from external textual input.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(s))) {
	case Expense:
		return Expense, nil
	case Income:
		return Income, nil
	case Transfer:
		return Transfer, nil
	default:
		return "", errors.New("type must be expense, income or transfer")
	}
}

// Transaction is a single entry of the ledger. Edits replace the whole
// record under the same ID; records are never partially patched.
//
// Expense and income entries reference the account they debit or credit and
// an optional category (zero CategoryID means uncategorized). Transfers
// reference two distinct accounts and are excluded from income/expense
// aggregates.
type Transaction struct {
	ID   ID     `json:"id"`
	Type TxType `json:"type"`
	// AccountID is the debited/credited account for expense and income.
	AccountID  ID `json:"accountId"`
	CategoryID ID `json:"categoryId"`
	// FromAccountID and ToAccountID are the two legs of a transfer.
	FromAccountID ID `json:"fromAccountId"`
	ToAccountID   ID `json:"toAccountId"`
	// Amount is always positive; the sign is implied by Type.
	Amount Amount   `json:"amount"`
	Date   Date     `json:"date"`
	Tags   []string `json:"tags"`
	Note   string   `json:"note"`
}

// When returns the calendar date of the transaction.
func (t Transaction) When() Date { return t.Date }

// HasTag reports whether the transaction carries the tag, matching
// case-insensitively.
func (t Transaction) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// Validate checks a transaction coming from user input, filling the date
// with today when absent. Stored transactions are never re-validated: the
// engines tolerate malformed records instead.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if !t.Amount.IsPositive() {
		return errors.New("valid amount required")
	}
	switch t.Type {
	case Expense, Income:
		if t.AccountID.IsZero() {
			return errors.New("account required")
		}
	case Transfer:
		if t.FromAccountID.IsZero() || t.ToAccountID.IsZero() {
			return errors.New("transfer needs two accounts")
		}
		if t.FromAccountID == t.ToAccountID {
			return errors.New("transfer accounts must differ")
		}
	default:
		return errors.New("type must be expense, income or transfer")
	}
	return nil
}

// MarshalJSON writes fields in a stable order, keeping only the fields
// meaningful for the transaction's type.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	if t.Type == Transfer {
		w.Append("fromAccountId", t.FromAccountID)
		w.Append("toAccountId", t.ToAccountID)
	} else {
		w.Append("accountId", t.AccountID)
		w.Optional("categoryId", t.CategoryID)
	}
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	w.Optional("tags", t.Tags)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

var _ json.Marshaler = Transaction{}
