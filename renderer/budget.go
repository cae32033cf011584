package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"kharcha"
)

const barWidth = 10

// BudgetMarkdown renders the monthly budget report: one gauge per capped
// section with severity and an over-budget marker.
func BudgetMarkdown(lines []kharcha.BudgetLine, month kharcha.Range, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget " + month.String())

	if len(lines) == 0 {
		doc.PlainText("No category has a monthly cap. Set one with `kha category -edit -cap`.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Category", "Spent", "Cap", "Usage", "Status"},
	}
	for _, line := range lines {
		table.Rows = append(table.Rows, []string{
			label(line.Category.Icon, line.Category.Name),
			opts.Money(line.Spent),
			opts.Money(line.Category.Cap),
			fmt.Sprintf("%s %.0f%%", bar(line.Percent, barWidth), line.Percent),
			status(line),
		})
	}
	doc.Table(table)

	return doc.String()
}

func status(line kharcha.BudgetLine) string {
	if line.OverBudget {
		return "🔴 over budget"
	}
	switch line.Severity {
	case kharcha.SeverityCritical:
		return "🔴 " + line.Severity.String()
	case kharcha.SeverityWarning:
		return "🟠 " + line.Severity.String()
	default:
		return "🟢 " + line.Severity.String()
	}
}
