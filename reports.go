package kharcha

import "sort"

// Filter describes a selection of transactions for the aggregation
// reports. Zero fields select everything: the zero Filter accepts the
// whole log.
type Filter struct {
	Type    TxType // Expense or Income; "" accepts both
	Account ID     // zero accepts all accounts
	Tag     string // "" accepts all tags
	Range   Range  // zero range accepts all dates
}

func (f Filter) predicates() []func(Transaction) bool {
	preds := []func(Transaction) bool{ByRange(f.Range)}
	if f.Type != "" {
		preds = append(preds, ByType(f.Type))
	}
	if !f.Account.IsZero() {
		preds = append(preds, ByAccount(f.Account))
	}
	if f.Tag != "" {
		preds = append(preds, ByTag(f.Tag))
	}
	return preds
}

// Filtered collects the matching transactions, newest first. Entries on
// the same day keep their insertion order.
func (l *Ledger) Filtered(f Filter) []Transaction {
	var out []Transaction
	for _, tx := range l.Transactions(f.predicates()...) {
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].When().Before(out[i].When())
	})
	return out
}

// Placeholder presentation attributes for buckets whose category record is
// gone or was never set.
const (
	unknownColor = "#888"
	unknownIcon  = "❓"
	incomeColor  = "#4bb14e"
	incomeIcon   = "💵"
)

// Bucket is one slice of a category breakdown: a category (possibly
// synthetic or dangling) with the sum of its matching transactions.
type Bucket struct {
	CategoryID ID // zero for the synthetic uncategorized/income bucket
	Name       string
	Color      string
	Icon       string
	Sum        Amount
}

// BreakdownReport is the category aggregation over a filtered set: one
// bucket per category in first-encountered order, a grand total, and the
// matching transactions newest first.
type BreakdownReport struct {
	Filter       Filter
	Total        Amount
	Buckets      []Bucket
	Transactions []Transaction
}

// CategoryBreakdown groups the filtered set by category, summing amounts
// per bucket and over the whole set.
//
// Transactions without a category land in a synthetic bucket named
// "Income" for income and "Uncategorized" for expenses. A dangling
// category reference resolves to "Unknown" with neutral presentation;
// the sum still accumulates, since grouping matches on the id alone.
func (l *Ledger) CategoryBreakdown(f Filter) *BreakdownReport {
	report := &BreakdownReport{Filter: f, Transactions: l.Filtered(f)}

	// Buckets follow the chronological log, not the newest-first listing,
	// so the first-encountered order is stable as new entries arrive.
	index := make(map[ID]int)
	for _, tx := range l.Transactions(f.predicates()...) {
		i, ok := index[tx.CategoryID]
		if !ok {
			index[tx.CategoryID] = len(report.Buckets)
			i = len(report.Buckets)
			report.Buckets = append(report.Buckets, l.newBucket(tx))
		}
		report.Buckets[i].Sum = report.Buckets[i].Sum.Add(tx.Amount)
		report.Total = report.Total.Add(tx.Amount)
	}
	return report
}

func (l *Ledger) newBucket(tx Transaction) Bucket {
	if tx.CategoryID.IsZero() {
		if tx.Type == Income {
			return Bucket{Name: "Income", Color: incomeColor, Icon: incomeIcon}
		}
		return Bucket{Name: "Uncategorized", Color: unknownColor, Icon: unknownIcon}
	}
	if cat := l.Category(tx.CategoryID); cat != nil {
		return Bucket{CategoryID: cat.ID, Name: cat.Name, Color: cat.Color, Icon: cat.Icon}
	}
	return Bucket{CategoryID: tx.CategoryID, Name: "Unknown", Color: unknownColor, Icon: unknownIcon}
}

// TagBucket is one ranked entry of a tag aggregation.
type TagBucket struct {
	Tag string
	Sum Amount
}

// TagReport is the tag aggregation over a filtered set.
//
// A transaction tagged N times contributes its full amount to each of the
// N tag buckets, but only once to the grand total. The bucket sums can
// therefore exceed the total; that asymmetry is deliberate (the ranking
// answers "how much was touched by this tag", the total answers "how much
// moved in the period").
type TagReport struct {
	Filter  Filter
	Total   Amount
	Buckets []TagBucket // sorted by sum descending, ties first-encountered
}

// TagBreakdown explodes each filtered transaction across its tags, sums
// per tag, and ranks the buckets by descending sum.
func (l *Ledger) TagBreakdown(f Filter) *TagReport {
	report := &TagReport{Filter: f}

	index := make(map[string]int)
	for _, tx := range l.Transactions(f.predicates()...) {
		for _, tag := range tx.Tags {
			i, ok := index[tag]
			if !ok {
				index[tag] = len(report.Buckets)
				i = len(report.Buckets)
				report.Buckets = append(report.Buckets, TagBucket{Tag: tag})
			}
			report.Buckets[i].Sum = report.Buckets[i].Sum.Add(tx.Amount)
		}
		report.Total = report.Total.Add(tx.Amount)
	}

	sort.SliceStable(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Sum.GreaterThan(report.Buckets[j].Sum)
	})
	return report
}
