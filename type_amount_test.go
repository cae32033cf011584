package kharcha

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount_Arithmetic(t *testing.T) {
	a := A(0.1)
	for i := 0; i < 9; i++ {
		a = a.Add(A(0.1))
	}
	// Exact decimal arithmetic: ten times 0.1 is exactly 1.
	if !a.Equal(A(1)) {
		t.Errorf("sum = %s, want 1.00", a)
	}

	if got := A(10).Sub(A(25)); !got.Equal(A(-15)) {
		t.Errorf("Sub = %s, want -15.00", got)
	}
}

func TestAmount_PercentOf(t *testing.T) {
	if got := A(95).PercentOf(A(100)); got != 95 {
		t.Errorf("PercentOf = %v, want 95", got)
	}
	if got := A(50).PercentOf(A(0)); got != 0 {
		t.Errorf("PercentOf zero = %v, want 0", got)
	}
}

func TestAmount_Strings(t *testing.T) {
	if got := A(120).String(); got != "120.00" {
		t.Errorf("String = %q", got)
	}
	if got := A(120).SignedString(); got != "+120.00" {
		t.Errorf("SignedString = %q", got)
	}
	if got := A(-3.5).SignedString(); got != "-3.50" {
		t.Errorf("SignedString = %q", got)
	}
	if got := A(0).SignedString(); got != "-" {
		t.Errorf("SignedString zero = %q", got)
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	b, err := A(120.5).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "120.5" {
		t.Errorf("MarshalJSON = %s, want a bare number", b)
	}
	// Marshaling must not flip package-level state in the decimal library.
	if decimal.MarshalJSONWithoutQuotes {
		t.Error("MarshalJSONWithoutQuotes was mutated")
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("120.50")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(A(120.5)) {
		t.Errorf("ParseAmount = %s", got)
	}

	if _, err := ParseAmount("12,50"); err == nil {
		t.Error("expected error for a comma decimal separator")
	}
	if _, err := ParseAmount(""); err == nil {
		t.Error("expected error for empty input")
	}
}
