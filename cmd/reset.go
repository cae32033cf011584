package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

const resetDelay = 10 // seconds

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the ledger and start over" }
func (*resetCmd) Usage() string {
	return `kha reset [-y]

  Erases everything: accounts, categories, transactions, tags and
  settings. A 10 second countdown runs first; Ctrl-C aborts. -y skips
  the countdown.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the countdown.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if !c.yes && !countdown(ctx) {
		fmt.Println("\nAborted, nothing erased.")
		return subcommands.ExitSuccess
	}

	if err := s.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("Ledger erased.")
	return subcommands.ExitSuccess
}

// countdown runs the grace period and reports whether it completed.
// Ctrl-C cancels it.
func countdown(ctx context.Context) bool {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	bar := progressbar.NewOptions(resetDelay,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Erasing in 10s, Ctrl-C to abort..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for i := 0; i < resetDelay; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			bar.Add(1)
		}
	}
	fmt.Fprintln(os.Stderr)
	return true
}
