package kharcha

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"kharcha/kv"
)

// Persisted keys. The names are part of the on-disk format; renaming one
// orphans existing data.
const (
	keyCategories     = "categories"
	keyTransactions   = "transactions"
	keyTags           = "allTags"
	keyUserName       = "userName"
	keyDefaultAccount = "defaultAccountId"
	keyBalanceHidden  = "isBalanceHidden"
	keyPIN            = "userPin"
)

// DefaultUserName greets a fresh store until the user sets a name.
const DefaultUserName = "USER"

// Store binds a Ledger to a kv.Store: it loads the ledger on open and
// writes back the affected key after each mutation. Read access goes
// through the embedded Ledger.
type Store struct {
	*Ledger
	kv kv.Store
}

// Open loads a Store from the given bucket. Corrupted payloads are not
// fatal: each key decodes independently and falls back to its default,
// with a warning, so one bad record never takes the whole dataset down.
func Open(bucket kv.Store) (*Store, error) {
	s := &Store{Ledger: NewLedger(), kv: bucket}

	if raw, ok, err := bucket.Get(keyCategories); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal(raw, &s.categories); err != nil {
			slog.Warn("discarding unreadable categories", "err", err)
			s.categories = nil
		}
	}
	if raw, ok, err := bucket.Get(keyTransactions); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal(raw, &s.transactions); err != nil {
			slog.Warn("discarding unreadable transactions", "err", err)
			s.transactions = nil
		}
		s.stableSort()
	}
	if raw, ok, err := bucket.Get(keyTags); err != nil {
		return nil, err
	} else if ok {
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			slog.Warn("discarding unreadable tags", "err", err)
		} else {
			s.tags = tags
		}
	}
	return s, nil
}

func (s *Store) Close() error { return s.kv.Close() }

func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(key, raw)
}

func (s *Store) saveCategories() error   { return s.save(keyCategories, s.categories) }
func (s *Store) saveTransactions() error { return s.save(keyTransactions, s.transactions) }
func (s *Store) saveTags() error         { return s.save(keyTags, s.tags) }

// AddCategory records the category and persists the category list.
func (s *Store) AddCategory(cat Category) (Category, error) {
	added, err := s.Ledger.AddCategory(cat)
	if err != nil {
		return Category{}, err
	}
	return added, s.saveCategories()
}

func (s *Store) UpdateCategory(cat Category) error {
	if err := s.Ledger.UpdateCategory(cat); err != nil {
		return err
	}
	return s.saveCategories()
}

func (s *Store) DeleteCategory(id ID) (bool, error) {
	if !s.Ledger.DeleteCategory(id) {
		return false, nil
	}
	return true, s.saveCategories()
}

func (s *Store) Reorder(ids []ID) error {
	s.Ledger.Reorder(ids)
	return s.saveCategories()
}

// SetAccountBalance reconciles the account to the entered balance and
// persists the adjusted initial balance.
func (s *Store) SetAccountBalance(id ID, entered Amount) error {
	if err := s.Ledger.SetAccountBalance(id, entered); err != nil {
		return err
	}
	return s.saveCategories()
}

// AddTransaction records the transaction and persists both the log and
// the tag registry, since recording may coin new tags.
func (s *Store) AddTransaction(tx Transaction) (Transaction, error) {
	added, err := s.Ledger.AddTransaction(tx)
	if err != nil {
		return Transaction{}, err
	}
	if err := s.saveTransactions(); err != nil {
		return Transaction{}, err
	}
	return added, s.saveTags()
}

func (s *Store) ReplaceTransaction(tx Transaction) error {
	if err := s.Ledger.ReplaceTransaction(tx); err != nil {
		return err
	}
	if err := s.saveTransactions(); err != nil {
		return err
	}
	return s.saveTags()
}

func (s *Store) DeleteTransaction(id ID) (bool, error) {
	if !s.Ledger.DeleteTransaction(id) {
		return false, nil
	}
	return true, s.saveTransactions()
}

// EnsureTag registers the tag and persists the registry.
func (s *Store) EnsureTag(tag string) (string, error) {
	canonical := s.Ledger.EnsureTag(tag)
	return canonical, s.saveTags()
}

// DeleteTag removes the tag everywhere and persists both the registry and
// the stripped transaction log.
func (s *Store) DeleteTag(tag string) (bool, error) {
	if !s.Ledger.DeleteTag(tag) {
		return false, nil
	}
	if err := s.saveTags(); err != nil {
		return true, err
	}
	return true, s.saveTransactions()
}

func (s *Store) setting(key, fallback string) string {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return fallback
	}
	return string(raw)
}

// UserName returns the display name, DefaultUserName when unset.
func (s *Store) UserName() string { return s.setting(keyUserName, DefaultUserName) }

func (s *Store) SetUserName(name string) error {
	return s.kv.Set(keyUserName, []byte(name))
}

// DefaultAccount returns the account preselected for new entries, zero
// when unset or when the stored id no longer resolves to an account.
func (s *Store) DefaultAccount() ID {
	id, err := ParseID(s.setting(keyDefaultAccount, ""))
	if err != nil {
		return 0
	}
	if cat := s.Category(id); cat == nil || !cat.IsAccount() {
		return 0
	}
	return id
}

func (s *Store) SetDefaultAccount(id ID) error {
	if cat := s.Category(id); cat == nil || !cat.IsAccount() {
		return fmt.Errorf("unknown account %s", id)
	}
	return s.kv.Set(keyDefaultAccount, []byte(id.String()))
}

// BalanceHidden reports whether balances are masked in listings.
func (s *Store) BalanceHidden() bool {
	hidden, _ := strconv.ParseBool(s.setting(keyBalanceHidden, "false"))
	return hidden
}

func (s *Store) SetBalanceHidden(hidden bool) error {
	return s.kv.Set(keyBalanceHidden, []byte(strconv.FormatBool(hidden)))
}

// HasPIN reports whether a PIN guards the store.
func (s *Store) HasPIN() bool { return s.setting(keyPIN, "") != "" }

// SetPIN installs a 4-digit PIN.
func (s *Store) SetPIN(pin string) error {
	if len(pin) != 4 {
		return fmt.Errorf("pin must be 4 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("pin must be 4 digits")
		}
	}
	return s.kv.Set(keyPIN, []byte(pin))
}

// CheckPIN reports whether pin matches. A store without a PIN accepts
// anything.
func (s *Store) CheckPIN(pin string) bool {
	stored := s.setting(keyPIN, "")
	return stored == "" || stored == pin
}

func (s *Store) ClearPIN() error { return s.kv.Delete(keyPIN) }

// Reset wipes every key and leaves a fresh ledger with the default tags.
func (s *Store) Reset() error {
	if err := s.kv.Reset(); err != nil {
		return err
	}
	s.Ledger = NewLedger()
	return nil
}

// backup is the portable snapshot written by Export and read by Import.
type backup struct {
	Categories     []Category    `json:"categories"`
	Transactions   []Transaction `json:"transactions"`
	Tags           []string      `json:"allTags"`
	UserName       string        `json:"userName,omitempty"`
	DefaultAccount string        `json:"defaultAccountId,omitempty"`
	BalanceHidden  bool          `json:"isBalanceHidden,omitempty"`
	PIN            string        `json:"userPin,omitempty"`
}

// Export writes the whole store as one JSON document.
func (s *Store) Export(w io.Writer) error {
	b := backup{
		Categories:    s.categories,
		Transactions:  s.transactions,
		Tags:          s.tags,
		UserName:      s.setting(keyUserName, ""),
		BalanceHidden: s.BalanceHidden(),
		PIN:           s.setting(keyPIN, ""),
	}
	if raw := s.setting(keyDefaultAccount, ""); raw != "" {
		b.DefaultAccount = raw
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// Import replaces the whole store with the snapshot read from r. Nothing
// is touched if the document does not decode.
func (s *Store) Import(r io.Reader) error {
	var b backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}
	if err := s.kv.Reset(); err != nil {
		return err
	}

	s.Ledger = NewLedger()
	s.categories = b.Categories
	s.transactions = b.Transactions
	s.stableSort()
	if len(b.Tags) > 0 {
		s.tags = b.Tags
	}

	if err := s.saveCategories(); err != nil {
		return err
	}
	if err := s.saveTransactions(); err != nil {
		return err
	}
	if err := s.saveTags(); err != nil {
		return err
	}
	if b.UserName != "" {
		if err := s.kv.Set(keyUserName, []byte(b.UserName)); err != nil {
			return err
		}
	}
	if b.DefaultAccount != "" {
		if err := s.kv.Set(keyDefaultAccount, []byte(b.DefaultAccount)); err != nil {
			return err
		}
	}
	if b.BalanceHidden {
		if err := s.SetBalanceHidden(true); err != nil {
			return err
		}
	}
	if b.PIN != "" {
		if err := s.kv.Set(keyPIN, []byte(b.PIN)); err != nil {
			return err
		}
	}
	return nil
}
