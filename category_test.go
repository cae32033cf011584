package kharcha

import (
	"encoding/json"
	"testing"
)

func TestCategory_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cat     Category
		wantErr bool
	}{
		{
			name: "valid account",
			cat:  Category{Type: Account, Name: "HDFC"},
		},
		{
			name: "valid capped section",
			cat:  Category{Type: Section, Name: "Food", Cap: A(1000)},
		},
		{
			name:    "missing name",
			cat:     Category{Type: Account},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cat:     Category{Type: "wallet", Name: "x"},
			wantErr: true,
		},
		{
			name:    "negative cap",
			cat:     Category{Type: Section, Name: "Food", Cap: A(-1)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cat.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestCategory_MarshalJSON_TypeDependentFields(t *testing.T) {
	acc := Category{ID: 1, Type: Account, Name: "HDFC", Icon: "🏦", InitialBalance: A(100)}
	raw, err := json.Marshal(acc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":1,"type":"account","name":"HDFC","icon":"🏦","order":0,"initialBalance":100}`
	if string(raw) != want {
		t.Errorf("account = %s, want %s", raw, want)
	}

	sec := Category{ID: 2, Type: Section, Name: "Food", Order: 3, Cap: A(1000)}
	raw, err = json.Marshal(sec)
	if err != nil {
		t.Fatal(err)
	}
	want = `{"id":2,"type":"section","name":"Food","order":3,"cap":1000}`
	if string(raw) != want {
		t.Errorf("section = %s, want %s", raw, want)
	}
}
