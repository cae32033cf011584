package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"kharcha"
)

// AccountRow pairs an account with its folded balance.
type AccountRow struct {
	Account kharcha.Category
	Balance kharcha.Amount
}

// AccountsMarkdown renders the account overview: a greeting, one row per
// account with its current balance, and the total across accounts.
func AccountsMarkdown(userName string, rows []AccountRow, total kharcha.Amount, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Hello, %s", userName))

	if len(rows) == 0 {
		doc.PlainText("No accounts yet. Create one with `kha category -account`.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Account", "Balance"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			label(r.Account.Icon, r.Account.Name),
			opts.Money(r.Balance),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(opts.Money(total))})
	doc.Table(table)

	return doc.String()
}
