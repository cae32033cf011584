package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole ledger as one JSON document" }
func (*exportCmd) Usage() string {
	return `kha export [-o <file>]

  Writes a portable snapshot of the ledger: categories, transactions,
  tags and settings. Without -o it goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file (defaults to stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	w := os.Stdout
	if c.out != "" {
		w, err = os.Create(c.out)
		if err != nil {
			return fail(err)
		}
		defer w.Close()
	}
	if err := s.Export(w); err != nil {
		return fail(err)
	}
	if c.out != "" {
		fmt.Printf("Exported ledger to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}
