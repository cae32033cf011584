package kharcha

import "fmt"

// ReconcileInitialBalance back-computes the opening balance that makes
// Balance reproduce exactly the value the user typed, holding the
// transaction history fixed.
//
// The edit-account form shows the derived *current* balance as the editable
// field ("my balance is 500", not "my opening balance was 300"). Saving
// that field therefore needs the inverse transform: isolate the net
// contribution of the transactions and subtract it from the entered value.
// A missing or corrupt stored opening balance counts as zero.
func (l *Ledger) ReconcileInitialBalance(accountID ID, entered Amount) Amount {
	var oldInitial Amount
	if account := l.Category(accountID); account != nil {
		oldInitial = account.InitialBalance
	}
	net := l.Balance(accountID).Sub(oldInitial)
	return entered.Sub(net)
}

// SetAccountBalance applies a user-edited current balance to an existing
// account by rewriting its opening balance through reconciliation. New
// accounts take the entered value literally (net contribution is zero, so
// the transform is the identity); this path is only for edits.
func (l *Ledger) SetAccountBalance(accountID ID, entered Amount) error {
	account := l.Category(accountID)
	if account == nil || !account.IsAccount() {
		return fmt.Errorf("unknown account %s", accountID)
	}
	account.InitialBalance = l.ReconcileInitialBalance(accountID, entered)
	return l.UpdateCategory(*account)
}
