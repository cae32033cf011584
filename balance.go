package kharcha

// Balance computes the current balance of an account by folding its
// initial balance with every transaction referencing it.
//
// The result is a pure function of the log: nothing is cached, and two
// calls with an unchanged log return the same value. A missing account
// record contributes a zero initial balance; malformed stored amounts
// decode to zero and therefore contribute nothing (see Amount).
func (l *Ledger) Balance(accountID ID) Amount {
	var total Amount
	if account := l.Category(accountID); account != nil {
		total = account.InitialBalance
	}
	for _, tx := range l.transactions {
		switch tx.Type {
		case Transfer:
			// The two legs differ by construction, so at most one
			// branch fires per transaction.
			if tx.ToAccountID == accountID {
				total = total.Add(tx.Amount)
			}
			if tx.FromAccountID == accountID {
				total = total.Sub(tx.Amount)
			}
		case Expense:
			if tx.AccountID == accountID {
				total = total.Sub(tx.Amount)
			}
		case Income:
			if tx.AccountID == accountID {
				total = total.Add(tx.Amount)
			}
		}
	}
	return total
}

// TotalBalance sums the balances of every account. Transfers cancel out,
// so the total is invariant under any transfer.
func (l *Ledger) TotalBalance() Amount {
	var total Amount
	for _, account := range l.Accounts() {
		total = total.Add(l.Balance(account.ID))
	}
	return total
}
