package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kharcha"
)

type editCmd struct {
	amount   string
	date     string
	account  string
	from     string
	to       string
	category string
	tags     string
	note     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editCmd) Usage() string {
	return `kha edit <id> [-a <amount>] [-d <date>] [-on <account>] [-from <account>] [-to <account>] [-c <category>] [-tag <t1,t2>] [-note <text>]

  Rewrites the fields of an existing transaction. Omitted flags keep
  their recorded value; -tag replaces the whole tag list.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.date, "d", "", "New date.")
	f.StringVar(&c.account, "on", "", "New account id, for expenses and incomes.")
	f.StringVar(&c.from, "from", "", "New source account id, for transfers.")
	f.StringVar(&c.to, "to", "", "New destination account id, for transfers.")
	f.StringVar(&c.category, "c", "", "New category id, 0 to clear.")
	f.StringVar(&c.tags, "tag", "", "Replacement tag list, comma separated.")
	f.StringVar(&c.note, "note", "", "New note.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	id, err := kharcha.ParseID(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	tx := s.Transaction(id)
	if tx == nil {
		return fail(fmt.Errorf("unknown transaction %s", id))
	}

	if err := c.apply(tx); err != nil {
		return fail(err)
	}

	warnCap(s, *tx)

	if err := s.ReplaceTransaction(*tx); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated transaction %s\n", id)
	return subcommands.ExitSuccess
}

func (c *editCmd) apply(tx *kharcha.Transaction) (err error) {
	if c.amount != "" {
		if tx.Amount, err = kharcha.ParseAmount(c.amount); err != nil {
			return err
		}
	}
	if c.date != "" {
		if tx.Date, err = kharcha.ParseDate(c.date); err != nil {
			return err
		}
	}
	if c.account != "" {
		if tx.AccountID, err = kharcha.ParseID(c.account); err != nil {
			return err
		}
	}
	if c.from != "" {
		if tx.FromAccountID, err = kharcha.ParseID(c.from); err != nil {
			return err
		}
	}
	if c.to != "" {
		if tx.ToAccountID, err = kharcha.ParseID(c.to); err != nil {
			return err
		}
	}
	if c.category != "" {
		if tx.CategoryID, err = kharcha.ParseID(c.category); err != nil {
			return err
		}
	}
	if c.tags != "" {
		tx.Tags = splitTags(c.tags)
	}
	if c.note != "" {
		tx.Note = c.note
	}
	return nil
}
