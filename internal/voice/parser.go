// Package voice turns a speech transcription into an expense draft using a
// best-effort heuristic: regex amount extraction and keyword category
// matching. The output always goes through user review before it becomes a
// transaction; nothing here is validated NLP.
package voice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"spendwise/internal/core"
)

// ParsedExpense is a reviewable draft candidate. DraftID identifies the
// candidate through the review flow; it is never a server id.
type ParsedExpense struct {
	DraftID     string
	Amount      *core.Money
	CategoryID  string // empty when no keyword matched
	Description string
	Confidence  float64 // 0..1
}

// Keywords that vote for a category. More hits win; ties keep the first
// category seen in this order.
var categoryKeywords = []struct {
	id       string
	keywords []string
}{
	{"food", []string{"food", "meal", "lunch", "dinner", "breakfast", "coffee", "restaurant", "groceries", "ate", "eating", "grocery"}},
	{"transport", []string{"uber", "taxi", "gas", "fuel", "bus", "train", "parking", "metro", "transport", "car", "bike"}},
	{"shopping", []string{"shopping", "clothes", "amazon", "bought", "purchase", "store", "mall"}},
	{"bills", []string{"bill", "electricity", "water", "rent", "internet", "phone", "utility"}},
	{"entertainment", []string{"movie", "cinema", "game", "concert", "party", "entertainment"}},
	{"health", []string{"doctor", "medicine", "hospital", "pharmacy", "gym", "fitness", "health"}},
	{"education", []string{"book", "course", "class", "tuition", "education", "school"}},
	{"travel", []string{"hotel", "flight", "vacation", "trip", "travel"}},
	{"gifts", []string{"gift", "present", "donation", "charity"}},
}

// Tried in order; the first match wins. The bare-number pattern is last so
// phrasing with currency words or verbs takes precedence.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:dollars?|bucks?|usd|\$)`),
	regexp.MustCompile(`(?i)(?:spent|paid|cost)\s+(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:on|for)`),
	regexp.MustCompile(`\$\s*(\d+\.?\d*)`),
	regexp.MustCompile(`(\d+\.?\d*)`),
}

var (
	amountWithUnitRe = regexp.MustCompile(`(?i)\d+\.?\d*\s*(?:dollars?|bucks?|usd|\$)`)
	fillerWordsRe    = regexp.MustCompile(`(?i)\b(?:spent|paid|cost|for|on)\b`)
	spacesRe         = regexp.MustCompile(`\s+`)
)

// Parse extracts amount, category and description from a transcription.
func Parse(text string) ParsedExpense {
	lower := strings.ToLower(text)
	out := ParsedExpense{DraftID: uuid.NewString()}
	confidence := 0.0

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			amount := core.MoneyFromFloat(v)
			out.Amount = &amount
			confidence += 0.4
		}
		break
	}

	maxMatches := 0
	for _, ck := range categoryKeywords {
		matches := 0
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			out.CategoryID = ck.id
		}
	}
	if out.CategoryID != "" {
		confidence += 0.3
	}

	desc := text
	if out.Amount != nil {
		desc = amountWithUnitRe.ReplaceAllString(desc, "")
		desc = fillerWordsRe.ReplaceAllString(desc, "")
	}
	desc = strings.TrimSpace(spacesRe.ReplaceAllString(desc, " "))
	out.Description = desc
	if len(desc) > 3 {
		confidence += 0.3
	}

	if confidence > 1 {
		confidence = 1
	}
	out.Confidence = confidence
	return out
}

// Draft converts the parsed result into an expense draft for the store.
// The caller is expected to have run the review step first.
func (p ParsedExpense) Draft() core.Draft {
	d := core.Draft{
		Type:        core.Expense,
		CategoryID:  p.CategoryID,
		Description: p.Description,
	}
	if p.CategoryID == "" {
		d.CategoryID = "other-expense"
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	return d
}
