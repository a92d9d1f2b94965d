package category

import (
	"testing"

	"spendwise/internal/core"
)

func TestLookupKnownAndFallback(t *testing.T) {
	if got := Lookup("food"); got.Name != "Food & Dining" {
		t.Fatalf("food lookup = %+v", got)
	}
	if got := Lookup("salary"); got.Type != core.Income {
		t.Fatalf("salary lookup = %+v", got)
	}
	if got := Lookup("no-such-slug"); got.ID != FallbackSlug {
		t.Fatalf("unknown slug lookup = %+v", got)
	}
}

func TestCurrencyFormat(t *testing.T) {
	cases := []struct {
		code  string
		cents int64
		want  string
	}{
		{"USD", 123456, "$1,234.56"},
		{"USD", 50, "$0.50"},
		{"EUR", 123456, "1.234,56 €"},
		{"GBP", -999, "-£9.99"},
	}
	for _, tc := range cases {
		cur := CurrencyByCode(tc.code)
		if got := cur.Format(core.Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("%s %d: got %q, want %q", tc.code, tc.cents, got, tc.want)
		}
	}
}

func TestCurrencyByCodeDefaultsToUSD(t *testing.T) {
	if got := CurrencyByCode("XXX"); got.Code != "USD" {
		t.Fatalf("default currency = %q", got.Code)
	}
	if got := CurrencyByCode("eur"); got.Code != "EUR" {
		t.Fatalf("case-insensitive lookup failed: %q", got.Code)
	}
}
