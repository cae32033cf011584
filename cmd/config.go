package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kharcha"
)

type configCmd struct {
	name           string
	defaultAccount string
	hide           bool
	show           bool
	setPIN         string
	clearPIN       bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "view or change ledger settings" }
func (*configCmd) Usage() string {
	return `kha config [-name <name>] [-default-account <id>] [-hide | -show] [-set-pin <pin>] [-clear-pin]

  Without flags, prints the current settings. -hide masks every monetary
  value in listings until -show. A 4-digit PIN locks the ledger; locked
  commands need the global -pin flag.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name used in greetings.")
	f.StringVar(&c.defaultAccount, "default-account", "", "Account preselected for new entries.")
	f.BoolVar(&c.hide, "hide", false, "Mask balances in listings.")
	f.BoolVar(&c.show, "show", false, "Show balances again.")
	f.StringVar(&c.setPIN, "set-pin", "", "Install a 4-digit PIN.")
	f.BoolVar(&c.clearPIN, "clear-pin", false, "Remove the PIN.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	changed := false
	if c.name != "" {
		if err := s.SetUserName(c.name); err != nil {
			return fail(err)
		}
		changed = true
	}
	if c.defaultAccount != "" {
		id, err := kharcha.ParseID(c.defaultAccount)
		if err != nil {
			return fail(err)
		}
		if err := s.SetDefaultAccount(id); err != nil {
			return fail(err)
		}
		changed = true
	}
	if c.hide || c.show {
		if c.hide && c.show {
			return fail(fmt.Errorf("-hide and -show flags cannot be used together"))
		}
		// Revealing balances is what the PIN protects.
		if c.show {
			if err := unlock(s); err != nil {
				return fail(err)
			}
		}
		if err := s.SetBalanceHidden(c.hide); err != nil {
			return fail(err)
		}
		changed = true
	}
	if c.setPIN != "" {
		if err := s.SetPIN(c.setPIN); err != nil {
			return fail(err)
		}
		changed = true
	}
	if c.clearPIN {
		if err := unlock(s); err != nil {
			return fail(err)
		}
		if err := s.ClearPIN(); err != nil {
			return fail(err)
		}
		changed = true
	}

	if changed {
		fmt.Println("Settings updated")
		return subcommands.ExitSuccess
	}

	fmt.Printf("name:            %s\n", s.UserName())
	if id := s.DefaultAccount(); !id.IsZero() {
		fmt.Printf("default account: %s (%s)\n", s.Category(id).Name, id)
	} else {
		fmt.Printf("default account: none\n")
	}
	fmt.Printf("balances:        %s\n", visibility(s.BalanceHidden()))
	fmt.Printf("pin:             %s\n", pinState(s.HasPIN()))
	return subcommands.ExitSuccess
}

func visibility(hidden bool) string {
	if hidden {
		return "hidden"
	}
	return "visible"
}

func pinState(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
