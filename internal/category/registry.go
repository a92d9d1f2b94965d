// Package category holds the static category and currency registries and the
// translation between the client category vocabulary (slugs) and the server's
// integer identifiers.
package category

import (
	"strconv"
	"strings"

	"spendwise/internal/core"
)

type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  core.TransactionType
}

type Currency struct {
	Code              string
	Symbol            string
	Name              string
	SymbolBefore      bool
	DecimalSeparator  string
	ThousandSeparator string
}

var ExpenseCategories = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "utensils", Color: "#ef4444", Type: core.Expense},
	{ID: "transport", Name: "Transportation", Icon: "car", Color: "#3b82f6", Type: core.Expense},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Color: "#8b5cf6", Type: core.Expense},
	{ID: "bills", Name: "Bills & Utilities", Icon: "receipt", Color: "#f59e0b", Type: core.Expense},
	{ID: "entertainment", Name: "Entertainment", Icon: "film", Color: "#ec4899", Type: core.Expense},
	{ID: "health", Name: "Health & Fitness", Icon: "heart", Color: "#10b981", Type: core.Expense},
	{ID: "education", Name: "Education", Icon: "book-open", Color: "#6366f1", Type: core.Expense},
	{ID: "travel", Name: "Travel", Icon: "plane", Color: "#06b6d4", Type: core.Expense},
	{ID: "gifts", Name: "Gifts & Donations", Icon: "gift", Color: "#f43f5e", Type: core.Expense},
	{ID: FallbackSlug, Name: "Other", Icon: "more-horizontal", Color: "#6b7280", Type: core.Expense},
}

var IncomeCategories = []Category{
	{ID: "salary", Name: "Salary", Icon: "briefcase", Color: "#10b981", Type: core.Income},
	{ID: "freelance", Name: "Freelance", Icon: "laptop", Color: "#8b5cf6", Type: core.Income},
	{ID: "investment", Name: "Investment", Icon: "trending-up", Color: "#3b82f6", Type: core.Income},
	{ID: "business", Name: "Business", Icon: "building-2", Color: "#6366f1", Type: core.Income},
	{ID: "other-income", Name: "Other Income", Icon: "plus-circle", Color: "#059669", Type: core.Income},
}

// Lookup returns the category metadata for a slug. The fallback expense
// category is returned for unknown slugs so display code never fails.
func Lookup(slug string) Category {
	for _, c := range ExpenseCategories {
		if c.ID == slug {
			return c
		}
	}
	for _, c := range IncomeCategories {
		if c.ID == slug {
			return c
		}
	}
	return ExpenseCategories[len(ExpenseCategories)-1]
}

var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", SymbolBefore: true, DecimalSeparator: ".", ThousandSeparator: ","},
	{Code: "EUR", Symbol: "€", Name: "Euro", SymbolBefore: false, DecimalSeparator: ",", ThousandSeparator: "."},
	{Code: "GBP", Symbol: "£", Name: "British Pound", SymbolBefore: true, DecimalSeparator: ".", ThousandSeparator: ","},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", SymbolBefore: true, DecimalSeparator: ".", ThousandSeparator: ","},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", SymbolBefore: true, DecimalSeparator: ".", ThousandSeparator: ","},
}

// CurrencyByCode returns the currency for a code, defaulting to USD.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if strings.EqualFold(c.Code, code) {
			return c
		}
	}
	return Currencies[0]
}

// Format renders a money amount with the currency's symbol position and
// separators, e.g. 123456 cents as "$1,234.56" or "1.234,56 €".
func (c Currency) Format(m core.Money) string {
	neg := m.Cents < 0
	cents := m.Cents
	if neg {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	frac := strconv.FormatInt(cents%100, 10)
	if len(frac) == 1 {
		frac = "0" + frac
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(c.ThousandSeparator)
		}
		b.WriteRune(r)
	}
	num := b.String() + c.DecimalSeparator + frac
	out := num + " " + c.Symbol
	if c.SymbolBefore {
		out = c.Symbol + num
	}
	if neg {
		out = "-" + out
	}
	return out
}
