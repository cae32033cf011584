package cmd

import (
	"reflect"
	"testing"

	"kharcha"
)

func TestFilterFlags_Parse(t *testing.T) {
	testCases := []struct {
		name  string
		flags filterFlags
		want  kharcha.Filter
	}{
		{
			name:  "no flags selects everything",
			flags: filterFlags{},
			want:  kharcha.Filter{},
		},
		{
			name:  "type and tag",
			flags: filterFlags{txType: "expense", tag: "Food"},
			want:  kharcha.Filter{Type: kharcha.Expense, Tag: "Food"},
		},
		{
			name:  "account id",
			flags: filterFlags{account: "1700000000000"},
			want:  kharcha.Filter{Account: 1700000000000},
		},
		{
			name:  "date only means that single day",
			flags: filterFlags{date: "2024-02-14"},
			want: kharcha.Filter{
				Range: kharcha.Daily.Range(kharcha.MustParseDate("2024-02-14")),
			},
		},
		{
			name:  "period anchored at the end date",
			flags: filterFlags{period: "month", date: "2024-02-14"},
			want: kharcha.Filter{
				Range: kharcha.Monthly.Range(kharcha.MustParseDate("2024-02-14")),
			},
		},
		{
			name:  "explicit start overrides the period",
			flags: filterFlags{period: "month", start: "2024-01-10", date: "2024-02-14"},
			want: kharcha.Filter{
				Range: kharcha.NewRange(
					kharcha.MustParseDate("2024-01-10"),
					kharcha.MustParseDate("2024-02-14"),
				),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.flags.parse()
			if err != nil {
				t.Fatalf("parse(): %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parse() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFilterFlags_ParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		flags filterFlags
	}{
		{"bad type", filterFlags{txType: "refund"}},
		{"bad account id", filterFlags{account: "HDFC"}},
		{"bad period", filterFlags{period: "quarter"}},
		{"bad start date", filterFlags{start: "last tuesday"}},
		{"bad end date", filterFlags{date: "2024-13-01"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.flags.parse(); err == nil {
				t.Errorf("parse(%+v): expected error", tc.flags)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Food", []string{"Food"}},
		{"Food,Fun", []string{"Food", "Fun"}},
		{" Food , ,Fun ", []string{"Food", "Fun"}},
	}
	for _, tc := range testCases {
		if got := splitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
