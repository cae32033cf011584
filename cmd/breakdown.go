package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"kharcha"
	"kharcha/renderer"
)

type breakdownCmd struct {
	filter filterFlags
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "spending grouped by category" }
func (*breakdownCmd) Usage() string {
	return `kha breakdown [-t expense|income] [-p <period>] [-d <date>] [-on <account>] [-tag <tag>]

  Groups the selected entries by category, with each bucket's share of
  the total, and lists the matching transactions. Defaults to this
  month's expenses.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.filter.set(f)
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.filter.txType == "" {
		c.filter.txType = "expense"
	}
	if c.filter.period == "" && c.filter.start == "" && c.filter.date == "" {
		c.filter.period = "month"
	}
	filter, err := c.filter.parse()
	if err != nil {
		return fail(err)
	}
	if filter.Type == kharcha.Transfer {
		return fail(errTransferBreakdown)
	}

	report := s.CategoryBreakdown(filter)
	printMarkdown(renderer.BreakdownMarkdown(s.Ledger, report, display(s)))
	return subcommands.ExitSuccess
}
