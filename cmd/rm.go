package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kharcha"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `kha rm <id>

  Deletes the transaction. Balances and reports fold it out on the next
  read; nothing else is touched.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ok, err := s.DeleteTransaction(id)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("unknown transaction %s", id))
	}
	fmt.Printf("Deleted transaction %s\n", id)
	return subcommands.ExitSuccess
}
