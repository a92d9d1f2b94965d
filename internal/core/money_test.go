package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{"7", 700, true},
		{".5", 50, true},
		{"", 0, false},
		{"-3", 0, false},
		{"0", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: got %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestMoneyFloatRoundTrip(t *testing.T) {
	m := MoneyFromFloat(50.0)
	if m.Cents != 5000 {
		t.Fatalf("cents = %d", m.Cents)
	}
	if m.Float() != 50.0 {
		t.Fatalf("float = %v", m.Float())
	}
	if MoneyFromFloat(0.1 + 0.2).Cents != 30 {
		t.Fatalf("rounding failed: %d", MoneyFromFloat(0.1+0.2).Cents)
	}
}
