package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"kharcha"
)

// BreakdownMarkdown renders a category breakdown: title, per-category
// table with share of total, and the matching transactions newest first.
func BreakdownMarkdown(l *kharcha.Ledger, r *kharcha.BreakdownReport, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(breakdownTitle(r.Filter))

	if len(r.Buckets) == 0 {
		doc.PlainText("Nothing recorded in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Category", "Amount", "Share"},
	}
	for _, b := range r.Buckets {
		table.Rows = append(table.Rows, []string{
			label(b.Icon, b.Name),
			opts.Money(b.Sum),
			fmt.Sprintf("%.1f%%", b.Sum.PercentOf(r.Total)),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(opts.Money(r.Total)), ""})
	doc.Table(table)

	if len(r.Transactions) > 0 {
		doc.H2("Transactions")
		var lines []string
		for _, tx := range r.Transactions {
			lines = append(lines, TransactionLine(l, tx, opts))
		}
		doc.BulletList(lines...)
	}

	return doc.String()
}

func breakdownTitle(f kharcha.Filter) string {
	title := "Breakdown"
	switch f.Type {
	case kharcha.Expense:
		title = "Expense Breakdown"
	case kharcha.Income:
		title = "Income Breakdown"
	}
	if !f.Range.IsZero() {
		title += " " + f.Range.String()
	}
	return title
}
