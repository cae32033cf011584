package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"kharcha"
)

type addCmd struct {
	txType   string
	amount   string
	date     string
	account  string
	category string
	tags     string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expense or an income" }
func (*addCmd) Usage() string {
	return `kha add -a <amount> [-t expense|income] [-d <date>] [-on <account>] [-c <category>] [-tag <t1,t2>] [-note <text>]

  Records an expense (the default) or an income. The account defaults to
  the configured default account. Dates accept 2006-01-02 and relative
  forms like -1d or -2w.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount (required, positive).")
	f.StringVar(&c.txType, "t", "expense", "Entry type: expense or income.")
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today).")
	f.StringVar(&c.account, "on", "", "Account id (defaults to the default account).")
	f.StringVar(&c.category, "c", "", "Category id.")
	f.StringVar(&c.tags, "tag", "", "Comma-separated tags; new tags join the registry.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	tx, err := c.build(s)
	if err != nil {
		return fail(err)
	}

	warnCap(s, tx)

	added, err := s.AddTransaction(tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s %s (%s)\n", added.Type, display(s).Money(added.Amount), added.ID)
	return subcommands.ExitSuccess
}

func (c *addCmd) build(s *kharcha.Store) (kharcha.Transaction, error) {
	kind, err := kharcha.ParseTxType(c.txType)
	if err != nil {
		return kharcha.Transaction{}, err
	}
	if kind == kharcha.Transfer {
		return kharcha.Transaction{}, fmt.Errorf("use `kha transfer` for transfers")
	}
	if c.amount == "" {
		return kharcha.Transaction{}, fmt.Errorf("-a is required")
	}
	amount, err := kharcha.ParseAmount(c.amount)
	if err != nil {
		return kharcha.Transaction{}, err
	}

	tx := kharcha.Transaction{
		Type:   kind,
		Amount: amount,
		Note:   c.note,
		Tags:   splitTags(c.tags),
	}

	if c.date != "" {
		tx.Date, err = kharcha.ParseDate(c.date)
		if err != nil {
			return kharcha.Transaction{}, err
		}
	}

	if c.account != "" {
		tx.AccountID, err = kharcha.ParseID(c.account)
		if err != nil {
			return kharcha.Transaction{}, err
		}
	} else {
		tx.AccountID = s.DefaultAccount()
	}
	if tx.AccountID.IsZero() {
		return kharcha.Transaction{}, fmt.Errorf("no account given and no default account configured")
	}

	if c.category != "" {
		tx.CategoryID, err = kharcha.ParseID(c.category)
		if err != nil {
			return kharcha.Transaction{}, err
		}
	}
	return tx, nil
}

func splitTags(csv string) []string {
	if csv == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// warnCap prints the cap advisory for a candidate expense. The entry is
// recorded either way; the advisory only tells the user where the month
// is heading.
func warnCap(s *kharcha.Store, tx kharcha.Transaction) {
	alert, total := s.CheckCap(tx)
	if alert == kharcha.CapOK {
		return
	}
	cat := s.Category(tx.CategoryID)
	switch alert {
	case kharcha.CapExceeded:
		fmt.Printf("⚠ This puts %s at %s, over its %s cap\n",
			cat.Name, display(s).Money(total), display(s).Money(cat.Cap))
	case kharcha.CapApproaching:
		fmt.Printf("⚠ This puts %s at %s, close to its %s cap\n",
			cat.Name, display(s).Money(total), display(s).Money(cat.Cap))
	}
}
