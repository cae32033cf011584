package kharcha

import "github.com/shopspring/decimal"

// Severity grades how far a month's spending has eaten into a section's
// cap.
type Severity int

const (
	SeverityNormal   Severity = iota // below 50% of cap
	SeverityWarning                  // 50% to just under 90%
	SeverityCritical                 // 90% and beyond
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// BudgetLine is one capped section in a budget report.
type BudgetLine struct {
	Category   Category
	Spent      Amount
	Percent    float64 // clamped to 100 for display
	Severity   Severity
	OverBudget bool // spent strictly exceeds cap
}

// BudgetReport computes, for every section carrying a cap, the expense
// total of the month containing day against that cap. Sections without a
// cap are skipped.
func (l *Ledger) BudgetReport(day Date) []BudgetLine {
	month := Monthly.Range(day)

	var lines []BudgetLine
	for _, cat := range l.Sections() {
		if cat.Cap.IsZero() || cat.Cap.IsNegative() {
			continue
		}
		spent := l.monthlySpend(cat.ID, month, 0)
		lines = append(lines, newBudgetLine(cat, spent))
	}
	return lines
}

func newBudgetLine(cat Category, spent Amount) BudgetLine {
	pct := spent.PercentOf(cat.Cap)
	line := BudgetLine{
		Category:   cat,
		Spent:      spent,
		Percent:    min(pct, 100),
		OverBudget: spent.GreaterThan(cat.Cap),
	}
	switch {
	case pct >= 90:
		line.Severity = SeverityCritical
	case pct >= 50:
		line.Severity = SeverityWarning
	}
	return line
}

// CapAlert is the entry-time advisory raised before an expense commits.
type CapAlert int

const (
	CapOK          CapAlert = iota
	CapApproaching          // new total reaches 90% of cap
	CapExceeded             // new total strictly exceeds cap
)

// CheckCap evaluates the advisory for a candidate expense against its
// section's cap, over the month containing the candidate's own date. When
// the candidate carries an id (an edit), the stored transaction with that
// id is excluded from the running total so it is not counted twice.
//
// It returns CapOK for anything but a capped-section expense. The second
// return is the prospective month total including the candidate.
func (l *Ledger) CheckCap(tx Transaction) (CapAlert, Amount) {
	if tx.Type != Expense || tx.CategoryID.IsZero() {
		return CapOK, Amount{}
	}
	cat := l.Category(tx.CategoryID)
	if cat == nil || cat.Cap.IsZero() || cat.Cap.IsNegative() {
		return CapOK, Amount{}
	}

	month := Monthly.Range(tx.When())
	total := l.monthlySpend(cat.ID, month, tx.ID).Add(tx.Amount)

	threshold := Amount{cat.Cap.value.Mul(decimal.NewFromFloat(0.9))}
	switch {
	case total.GreaterThan(cat.Cap):
		return CapExceeded, total
	case total.GreaterThanOrEqual(threshold):
		return CapApproaching, total
	}
	return CapOK, total
}

func (l *Ledger) monthlySpend(categoryID ID, month Range, exclude ID) Amount {
	var sum Amount
	for _, tx := range l.Transactions(ByType(Expense), ByRange(month)) {
		if tx.CategoryID != categoryID || tx.ID == exclude {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum
}
