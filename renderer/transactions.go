package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"kharcha"
)

// TransactionLine renders a transaction to a single line, e.g.
// "2024-01-15 -₹450.00 🍕 Food Court (HDFC) #Food lunch".
func TransactionLine(l *kharcha.Ledger, tx kharcha.Transaction, opts Options) string {
	var b strings.Builder
	b.WriteString(tx.When().String())

	switch tx.Type {
	case kharcha.Expense:
		fmt.Fprintf(&b, " %s", opts.Signed(tx.Amount.Neg()))
		b.WriteString(" " + bucketName(l, tx))
		if name := accountName(l, tx.AccountID); name != "" {
			fmt.Fprintf(&b, " (%s)", name)
		}
	case kharcha.Income:
		fmt.Fprintf(&b, " %s", opts.Signed(tx.Amount))
		b.WriteString(" " + bucketName(l, tx))
		if name := accountName(l, tx.AccountID); name != "" {
			fmt.Fprintf(&b, " (%s)", name)
		}
	case kharcha.Transfer:
		fmt.Fprintf(&b, " %s %s → %s",
			opts.Money(tx.Amount),
			orUnknown(accountName(l, tx.FromAccountID)),
			orUnknown(accountName(l, tx.ToAccountID)))
	}

	for _, tag := range tx.Tags {
		b.WriteString(" #" + tag)
	}
	if tx.Note != "" {
		b.WriteString(" " + tx.Note)
	}
	return b.String()
}

// TransactionsMarkdown renders a plain transaction listing.
func TransactionsMarkdown(l *kharcha.Ledger, txs []kharcha.Transaction, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("Nothing recorded yet.")
		return doc.String()
	}

	var lines []string
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf("%s %s", md.Code(tx.ID.String()), TransactionLine(l, tx, opts)))
	}
	doc.BulletList(lines...)
	return doc.String()
}

func bucketName(l *kharcha.Ledger, tx kharcha.Transaction) string {
	if tx.CategoryID.IsZero() {
		if tx.Type == kharcha.Income {
			return "Income"
		}
		return "Uncategorized"
	}
	if cat := l.Category(tx.CategoryID); cat != nil {
		return label(cat.Icon, cat.Name)
	}
	return "Unknown"
}

func accountName(l *kharcha.Ledger, id kharcha.ID) string {
	if id.IsZero() {
		return ""
	}
	if cat := l.Category(id); cat != nil {
		return cat.Name
	}
	return ""
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
