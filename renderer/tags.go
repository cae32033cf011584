package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"kharcha"
)

// TagsMarkdown renders a tag aggregation: ranked tag buckets with a grand
// total that counts each transaction once, however many tags it carries.
func TagsMarkdown(r *kharcha.TagReport, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Tags"
	if !r.Filter.Range.IsZero() {
		title += " " + r.Filter.Range.String()
	}
	doc.H1(title)

	if len(r.Buckets) == 0 {
		doc.PlainText("No tagged transactions in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Tag", "Amount"},
	}
	for _, b := range r.Buckets {
		table.Rows = append(table.Rows, []string{"#" + b.Tag, opts.Money(b.Sum)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(opts.Money(r.Total))})
	doc.Table(table)

	doc.PlainText("A transaction with several tags counts toward each of them; the total counts it once.")
	return doc.String()
}

// TagListMarkdown renders the registry itself, with usage counts.
func TagListMarkdown(tags []string, used map[string]int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tag Registry")
	if len(tags) == 0 {
		doc.PlainText("No tags defined.")
		return doc.String()
	}

	var lines []string
	for _, tag := range tags {
		switch n := used[tag]; n {
		case 0:
			lines = append(lines, "#"+tag)
		case 1:
			lines = append(lines, fmt.Sprintf("#%s (1 transaction)", tag))
		default:
			lines = append(lines, fmt.Sprintf("#%s (%d transactions)", tag, n))
		}
	}
	doc.BulletList(lines...)
	return doc.String()
}
