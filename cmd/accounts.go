package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"kharcha/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their current balances" }
func (*accountsCmd) Usage() string {
	return `kha accounts

  Lists every account with its balance folded from the full transaction
  log, and the total across accounts.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	var rows []renderer.AccountRow
	for _, acc := range s.Accounts() {
		rows = append(rows, renderer.AccountRow{Account: acc, Balance: s.Balance(acc.ID)})
	}
	printMarkdown(renderer.AccountsMarkdown(s.UserName(), rows, s.TotalBalance(), display(s)))
	return subcommands.ExitSuccess
}
