package kharcha

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger holds the in-memory collections: categories (accounts and
// sections interleaved), the transaction log, and the tag registry.
//
// In a Ledger transactions are always in chronological order. Balances and
// aggregates are never stored; they are recomputed from the full log on
// every read.
//
// No referential integrity is enforced at write time: deleting a category
// leaves its transactions dangling, and reports render those as "Unknown".
type Ledger struct {
	categories   []Category
	transactions []Transaction
	tags         []string // registry, canonical casing
}

// DefaultTags is the tag vocabulary of a fresh ledger.
var DefaultTags = []string{"Food", "Travel", "Bills", "Fun"}

// NewLedger creates an empty ledger with the default tag vocabulary.
func NewLedger() *Ledger {
	return &Ledger{
		categories:   make([]Category, 0),
		transactions: make([]Transaction, 0),
		tags:         append([]string(nil), DefaultTags...),
	}
}

// Category returns the category with this id, or nil if unknown.
func (l *Ledger) Category(id ID) *Category {
	for i := range l.categories {
		if l.categories[i].ID == id {
			c := l.categories[i]
			return &c
		}
	}
	return nil
}

// Accounts returns all account records sorted by display order.
func (l *Ledger) Accounts() []Category { return l.byType(Account) }

// Sections returns all spending categories sorted by display order.
func (l *Ledger) Sections() []Category { return l.byType(Section) }

func (l *Ledger) byType(kind CategoryType) []Category {
	var out []Category
	for _, c := range l.categories {
		if c.Type == kind {
			out = append(out, c)
		}
	}
	sortByOrder(out)
	return out
}

// AddCategory validates and appends a new category, minting its identity.
// The display order defaults to the end of the list.
func (l *Ledger) AddCategory(c Category) (Category, error) {
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	if c.ID.IsZero() {
		c.ID = NewID()
	}
	if c.Order == 0 {
		c.Order = len(l.categories)
	}
	l.categories = append(l.categories, c)
	return c, nil
}

// UpdateCategory replaces the whole record under the same id. The type is
// fixed at creation and silently preserved.
func (l *Ledger) UpdateCategory(c Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for i := range l.categories {
		if l.categories[i].ID == c.ID {
			c.Type = l.categories[i].Type
			l.categories[i] = c
			return nil
		}
	}
	return fmt.Errorf("unknown category %s", c.ID)
}

// DeleteCategory removes the record. Transactions referencing it are left
// untouched and will render as "Unknown".
func (l *Ledger) DeleteCategory(id ID) bool {
	for i := range l.categories {
		if l.categories[i].ID == id {
			l.categories = append(l.categories[:i], l.categories[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder assigns contiguous display orders following the given id sequence.
// Ids not present in the sequence keep their current order.
func (l *Ledger) Reorder(ids []ID) {
	position := make(map[ID]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	for i := range l.categories {
		if pos, ok := position[l.categories[i].ID]; ok {
			l.categories[i].Order = pos
		}
	}
}

// Transactions returns an iterator over transactions, in chronological
// order, accepting only those matching every filter.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Transaction returns the transaction with this id, or nil if unknown.
func (l *Ledger) Transaction(id ID) *Transaction {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			tx := l.transactions[i]
			return &tx
		}
	}
	return nil
}

// AddTransaction validates and appends a new transaction, minting its
// identity and canonicalizing its tags through the registry.
func (l *Ledger) AddTransaction(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if tx.ID.IsZero() {
		tx.ID = NewID()
	}
	tx.Tags = l.canonicalTags(tx.Tags)
	l.transactions = append(l.transactions, tx)
	l.stableSort()
	return tx, nil
}

// ReplaceTransaction swaps the whole record under the same id.
func (l *Ledger) ReplaceTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			tx.Tags = l.canonicalTags(tx.Tags)
			l.transactions[i] = tx
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("unknown transaction %s", tx.ID)
}

// DeleteTransaction removes the record.
func (l *Ledger) DeleteTransaction(id ID) bool {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// OldestTransactionDate returns the date of the earliest transaction, or
// the zero date when the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// stableSort sorts the log by transaction date. The sort is stable, meaning
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a filter accepting transactions of the given type.
func ByType(kind TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == kind }
}

// ByAccount returns a filter accepting expense/income entries against the
// account and transfers touching it.
func ByAccount(id ID) func(Transaction) bool {
	return func(tx Transaction) bool {
		if tx.Type == Transfer {
			return tx.FromAccountID == id || tx.ToAccountID == id
		}
		return tx.AccountID == id
	}
}

// ByTag returns a filter accepting transactions carrying the tag.
func ByTag(tag string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.HasTag(tag) }
}

// ByRange returns a filter accepting transactions dated within the range,
// boundaries included. The zero range accepts everything.
func ByRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.IsZero() || r.Contains(tx.When()) }
}
