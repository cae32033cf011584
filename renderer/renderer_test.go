package renderer

import (
	"strings"
	"testing"

	"kharcha"
)

func TestOptions_Money(t *testing.T) {
	opts := Options{Currency: "INR"}
	if got := opts.Money(kharcha.A(120000)); !strings.Contains(got, "120,000.00") {
		t.Errorf("Money = %q, want grouped digits", got)
	}

	hidden := Options{Currency: "INR", Hidden: true}
	if got := hidden.Money(kharcha.A(120000)); got != masked {
		t.Errorf("Money hidden = %q, want %q", got, masked)
	}
	if got := hidden.Signed(kharcha.A(5)); got != masked {
		t.Errorf("Signed hidden = %q, want %q", got, masked)
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		percent float64
		want    string
	}{
		{0, "[----------]"},
		{50, "[█████-----]"},
		{100, "[██████████]"},
		{250, "[██████████]"}, // clamped
	}
	for _, tc := range testCases {
		if got := bar(tc.percent, 10); got != tc.want {
			t.Errorf("bar(%v) = %q, want %q", tc.percent, got, tc.want)
		}
	}
}

func TestAccountsMarkdown(t *testing.T) {
	rows := []AccountRow{
		{Account: kharcha.Category{Type: kharcha.Account, Name: "HDFC", Icon: "🏦"}, Balance: kharcha.A(80)},
	}
	doc := AccountsMarkdown("Asha", rows, kharcha.A(80), Options{})

	for _, want := range []string{"Hello, Asha", "🏦 HDFC", "80.00", "Total"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestBudgetMarkdown_Status(t *testing.T) {
	month := kharcha.Monthly.Range(kharcha.MustParseDate("2024-01-15"))
	lines := []kharcha.BudgetLine{
		{Category: kharcha.Category{Name: "Food"}, Spent: kharcha.A(30), Percent: 30, Severity: kharcha.SeverityNormal},
		{Category: kharcha.Category{Name: "Travel"}, Spent: kharcha.A(95), Percent: 95, Severity: kharcha.SeverityCritical},
		{Category: kharcha.Category{Name: "Fun"}, Spent: kharcha.A(120), Percent: 100, Severity: kharcha.SeverityCritical, OverBudget: true},
	}

	doc := BudgetMarkdown(lines, month, Options{})
	for _, want := range []string{"normal", "critical", "over budget"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestTransactionLine(t *testing.T) {
	ledgerWith := func(cats ...kharcha.Category) *kharcha.Ledger {
		led := kharcha.NewLedger()
		for _, c := range cats {
			if _, err := led.AddCategory(c); err != nil {
				t.Fatal(err)
			}
		}
		return led
	}

	led := ledgerWith(
		kharcha.Category{ID: 1, Type: kharcha.Account, Name: "HDFC"},
		kharcha.Category{ID: 2, Type: kharcha.Account, Name: "SBI"},
		kharcha.Category{ID: 3, Type: kharcha.Section, Name: "Food", Icon: "🍕"},
	)

	expense := kharcha.Transaction{Type: kharcha.Expense, AccountID: 1, CategoryID: 3, Amount: kharcha.A(450), Date: kharcha.MustParseDate("2024-01-15"), Tags: []string{"Food"}, Note: "lunch"}
	got := TransactionLine(led, expense, Options{})
	for _, want := range []string{"2024-01-15", "-450.00", "🍕 Food", "(HDFC)", "#Food", "lunch"} {
		if !strings.Contains(got, want) {
			t.Errorf("expense line missing %q: %q", want, got)
		}
	}

	transfer := kharcha.Transaction{Type: kharcha.Transfer, FromAccountID: 1, ToAccountID: 2, Amount: kharcha.A(40), Date: kharcha.MustParseDate("2024-01-16")}
	got = TransactionLine(led, transfer, Options{})
	if !strings.Contains(got, "HDFC → SBI") {
		t.Errorf("transfer line = %q", got)
	}
}
