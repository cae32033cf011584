package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"kharcha"
	"kharcha/renderer"
)

var errTransferBreakdown = errors.New("breakdowns cover expenses and incomes, not transfers")

type tagsCmd struct {
	filter filterFlags
	add    string
	rm     string
	yes    bool
	report bool
}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "manage tags or report spending by tag" }
func (*tagsCmd) Usage() string {
	return `kha tags
kha tags -add <name>
kha tags -rm <name> [-y]
kha tags -report [-t expense|income] [-p <period>] [-d <date>]

  Without flags, lists the tag registry with usage counts. -rm cascades:
  the tag disappears from every transaction carrying it. -report ranks
  tags by the amount they touched in the period.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {
	c.filter.set(f)
	f.StringVar(&c.add, "add", "", "Register a new tag.")
	f.StringVar(&c.rm, "rm", "", "Delete a tag everywhere.")
	f.BoolVar(&c.yes, "y", false, "Skip the cascade confirmation on -rm.")
	f.BoolVar(&c.report, "report", false, "Rank tags by amount over the period.")
}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	switch {
	case c.add != "":
		canonical, err := s.EnsureTag(c.add)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Tag #%s registered\n", canonical)
		return subcommands.ExitSuccess

	case c.rm != "":
		return c.remove(s)

	case c.report:
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
		printMarkdown(renderer.TagsMarkdown(s.TagBreakdown(filter), display(s)))
		return subcommands.ExitSuccess

	default:
		used := make(map[string]int)
		for _, tx := range s.Transactions() {
			for _, tag := range tx.Tags {
				used[tag]++
			}
		}
		printMarkdown(renderer.TagListMarkdown(s.Tags(), used))
		return subcommands.ExitSuccess
	}
}

func (c *tagsCmd) remove(s *kharcha.Store) subcommands.ExitStatus {
	if !c.yes && !confirm(fmt.Sprintf("Delete #%s from the registry and every transaction carrying it?", c.rm)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	ok, err := s.DeleteTag(c.rm)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("unknown tag %q", c.rm))
	}
	fmt.Printf("Tag #%s deleted everywhere\n", c.rm)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
