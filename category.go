package kharcha

import (
	"encoding/json"
	"errors"
	"sort"
)

// CategoryType discriminates the two uses of a Category record.
type CategoryType string

const (
	// Account is a money-holding entity with an opening balance.
	Account CategoryType = "account"
	// Section is a spending/income category, optionally budget-capped.
	Section CategoryType = "section"
)

// Category is a dual-purpose record: an account or a spending category,
// discriminated by Type. The type is fixed at creation.
type Category struct {
	ID    ID           `json:"id"`
	Type  CategoryType `json:"type"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Icon  string       `json:"icon"`
	// Order is the user-controlled display position. Values need not be
	// contiguous; ties keep insertion order.
	Order int `json:"order"`
	// InitialBalance is the baseline an account's transactions accumulate
	// from. Meaningful only when Type is Account.
	InitialBalance Amount `json:"initialBalance"`
	// Cap is the monthly spending ceiling for a section. Zero means the
	// section is not tracked in the budget view. Meaningful only when Type
	// is Section.
	Cap Amount `json:"cap"`
}

func (c Category) IsAccount() bool { return c.Type == Account }
func (c Category) IsSection() bool { return c.Type == Section }

// Validate checks a category record coming from user input.
func (c Category) Validate() error {
	if c.Name == "" {
		return errors.New("name required")
	}
	switch c.Type {
	case Account, Section:
	default:
		return errors.New("type must be account or section")
	}
	if c.Cap.IsNegative() {
		return errors.New("cap cannot be negative")
	}
	return nil
}

// MarshalJSON writes fields in a stable order, omitting the balance on
// sections and the cap on accounts.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("type", c.Type)
	w.Append("name", c.Name)
	w.Optional("color", c.Color)
	w.Optional("icon", c.Icon)
	w.Append("order", c.Order)
	if c.IsAccount() {
		w.Append("initialBalance", c.InitialBalance)
	}
	if c.IsSection() {
		w.Append("cap", c.Cap)
	}
	return w.MarshalJSON()
}

var _ json.Marshaler = Category{}

// sortByOrder sorts categories by Order ascending. The sort is stable so
// equal orders keep their insertion order.
func sortByOrder(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Order < cats[j].Order
	})
}
