package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported snapshot" }
func (*importCmd) Usage() string {
	return `kha import [-y] <file>

  Replaces everything in the ledger with the snapshot. The current data
  is gone afterwards; export first if you want a way back.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	if !c.yes && !confirm("Replace the whole ledger with this snapshot?") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	r, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer r.Close()

	if err := s.Import(r); err != nil {
		return fail(err)
	}
	fmt.Println("Ledger imported")
	return subcommands.ExitSuccess
}
