package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kharcha/renderer"
)

type txCmd struct {
	filter filterFlags
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `kha tx [-p <period> | -s <start_date>] [-d <end_date>] [-t <type>] [-on <account>] [-tag <tag>] [-head <n>] [-tail <n>]

  Lists transactions newest first, with options for filtering and
  limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.filter.set(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	filter, err := c.filter.parse()
	if err != nil {
		return fail(err)
	}

	txs := s.Filtered(filter)
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(s.Ledger, txs, display(s)))
	return subcommands.ExitSuccess
}
