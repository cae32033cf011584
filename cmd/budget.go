package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"kharcha"
	"kharcha/renderer"
)

type budgetCmd struct {
	date string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "monthly spending against category caps" }
func (*budgetCmd) Usage() string {
	return `kha budget [-d <date>]

  Shows, for every capped category, how much of the cap the month
  containing the date has consumed. Defaults to the current month.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any day of the month to report on (defaults to today).")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	day := kharcha.Today()
	if c.date != "" {
		if day, err = kharcha.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}

	lines := s.BudgetReport(day)
	printMarkdown(renderer.BudgetMarkdown(lines, kharcha.Monthly.Range(day), display(s)))
	return subcommands.ExitSuccess
}
