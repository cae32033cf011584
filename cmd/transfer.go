package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kharcha"
)

type transferCmd struct {
	amount string
	from   string
	to     string
	date   string
	tags   string
	note   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `kha transfer -a <amount> -from <account> -to <account> [-d <date>] [-tag <t1,t2>] [-note <text>]

  Records a transfer. The total across accounts is unchanged; only the
  two account balances move.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount (required, positive).")
	f.StringVar(&c.from, "from", "", "Source account id (required).")
	f.StringVar(&c.to, "to", "", "Destination account id (required).")
	f.StringVar(&c.date, "d", "", "Date of the transfer (defaults to today).")
	f.StringVar(&c.tags, "tag", "", "Comma-separated tags.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.amount == "" || c.from == "" || c.to == "" {
		return fail(fmt.Errorf("-a, -from and -to are required"))
	}
	amount, err := kharcha.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	from, err := kharcha.ParseID(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := kharcha.ParseID(c.to)
	if err != nil {
		return fail(err)
	}

	tx := kharcha.Transaction{
		Type:          kharcha.Transfer,
		Amount:        amount,
		FromAccountID: from,
		ToAccountID:   to,
		Tags:          splitTags(c.tags),
		Note:          c.note,
	}
	if c.date != "" {
		tx.Date, err = kharcha.ParseDate(c.date)
		if err != nil {
			return fail(err)
		}
	}

	added, err := s.AddTransaction(tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Transferred %s (%s)\n", display(s).Money(added.Amount), added.ID)
	return subcommands.ExitSuccess
}
