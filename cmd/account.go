package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kharcha"
)

type accountCmd struct {
	add        bool
	rm         bool
	setDefault bool
	name       string
	icon       string
	color      string
	balance    string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "create, edit or remove an account" }
func (*accountCmd) Usage() string {
	return `kha account -add -name <name> [-icon <icon>] [-color <hex>] [-balance <amount>]
kha account <id> [-name <name>] [-icon <icon>] [-color <hex>] [-balance <amount>] [-default]
kha account -rm <id>

  Creates an account, edits one, or removes one. Editing -balance does not
  rewrite history: the initial balance is adjusted so the account's folded
  balance lands exactly on the entered value.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new account.")
	f.BoolVar(&c.rm, "rm", false, "Remove the account with the given id.")
	f.BoolVar(&c.setDefault, "default", false, "Make this account the default for new entries.")
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.icon, "icon", "", "Account icon (an emoji).")
	f.StringVar(&c.color, "color", "", "Account color (hex).")
	f.StringVar(&c.balance, "balance", "", "Balance: initial balance on -add, reconciliation target on edit.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.add {
		return c.create(s)
	}

	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	id, err := kharcha.ParseID(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	if c.rm {
		ok, err := s.DeleteCategory(id)
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("unknown account %s", id))
		}
		fmt.Println("Account removed. Its transactions stay in the log.")
		return subcommands.ExitSuccess
	}
	return c.edit(s, id)
}

func (c *accountCmd) create(s *kharcha.Store) subcommands.ExitStatus {
	acc := kharcha.Category{
		Type:  kharcha.Account,
		Name:  c.name,
		Icon:  c.icon,
		Color: c.color,
	}
	if c.balance != "" {
		initial, err := kharcha.ParseAmount(c.balance)
		if err != nil {
			return fail(err)
		}
		acc.InitialBalance = initial
	}
	added, err := s.AddCategory(acc)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %s (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}

func (c *accountCmd) edit(s *kharcha.Store, id kharcha.ID) subcommands.ExitStatus {
	acc := s.Category(id)
	if acc == nil || !acc.IsAccount() {
		return fail(fmt.Errorf("unknown account %s", id))
	}

	if c.name != "" {
		acc.Name = c.name
	}
	if c.icon != "" {
		acc.Icon = c.icon
	}
	if c.color != "" {
		acc.Color = c.color
	}
	if err := s.UpdateCategory(*acc); err != nil {
		return fail(err)
	}

	if c.balance != "" {
		entered, err := kharcha.ParseAmount(c.balance)
		if err != nil {
			return fail(err)
		}
		if err := s.SetAccountBalance(id, entered); err != nil {
			return fail(err)
		}
		fmt.Printf("Reconciled %s to %s\n", acc.Name, display(s).Money(entered))
	}

	if c.setDefault {
		if err := s.SetDefaultAccount(id); err != nil {
			return fail(err)
		}
		fmt.Printf("%s is now the default account\n", acc.Name)
	}
	return subcommands.ExitSuccess
}
