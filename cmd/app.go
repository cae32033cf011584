// Package cmd implements the CLI application to manage a personal
// expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"kharcha"
	"kharcha/kv"
	"kharcha/renderer"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&accountCmd{}, "accounts")
	c.Register(&categoryCmd{}, "accounts")

	c.Register(&addCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&breakdownCmd{}, "reports")
	c.Register(&tagsCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")

	c.Register(&configCmd{}, "settings")
	c.Register(&exportCmd{}, "settings")
	c.Register(&importCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")
}

// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables.

var dbPath = flag.String("db", defaultDBPath(), "Path to the ledger database file")
var pin = flag.String("pin", "", "PIN unlocking a protected ledger")

// displayCurrency is the only currency the ledger handles.
const displayCurrency = "INR"

func defaultDBPath() string {
	if p := os.Getenv("KHARCHA_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kharcha.db"
	}
	return filepath.Join(home, ".kharcha", "kharcha.db")
}

// openStore opens the ledger database and loads the ledger.
func openStore() (*kharcha.Store, error) {
	bucket, err := kv.OpenSQLite(*dbPath)
	if err != nil {
		return nil, err
	}
	s, err := kharcha.Open(bucket)
	if err != nil {
		bucket.Close()
		return nil, err
	}
	return s, nil
}

// unlock enforces the PIN on the privacy-sensitive operations. Stores
// without a PIN always unlock.
func unlock(s *kharcha.Store) error {
	if !s.CheckPIN(*pin) {
		return fmt.Errorf("wrong or missing PIN, pass it with -pin")
	}
	return nil
}

func display(s *kharcha.Store) renderer.Options {
	return renderer.Options{Currency: displayCurrency, Hidden: s.BalanceHidden()}
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
