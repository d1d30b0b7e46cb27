package domain

// ExpenseCategory classifies what an expense was spent on.
type ExpenseCategory string

const (
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseActivity      ExpenseCategory = "activity"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every category in the fixed order used by budget
// breakdowns. Aggregations iterate this slice so their output order is stable.
var ExpenseCategories = []ExpenseCategory{
	ExpenseAccommodation,
	ExpenseFood,
	ExpenseTransport,
	ExpenseActivity,
	ExpenseShopping,
	ExpenseOther,
}

// expenseCategoryInfo maps each category to its display label and glyph.
var expenseCategoryInfo = map[ExpenseCategory]CategoryInfo{
	ExpenseAccommodation: {Label: "Accommodation", Glyph: "🏨"},
	ExpenseFood:          {Label: "Food & Dining", Glyph: "🍽️"},
	ExpenseTransport:     {Label: "Transport", Glyph: "🚗"},
	ExpenseActivity:      {Label: "Activities", Glyph: "🎯"},
	ExpenseShopping:      {Label: "Shopping", Glyph: "🛍️"},
	ExpenseOther:         {Label: "Other", Glyph: "💳"},
}

// CategoryInfo is the display metadata attached to a closed enumeration
// variant: a human-readable label and an emoji glyph.
type CategoryInfo struct {
	Label string `json:"label"`
	Glyph string `json:"glyph"`
}

// Valid reports whether c is one of the known expense categories.
func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategoryInfo[c]
	return ok
}

// Info returns the display metadata for c. Unknown categories fall back to
// the "other" entry rather than a zero value.
func (c ExpenseCategory) Info() CategoryInfo {
	if info, ok := expenseCategoryInfo[c]; ok {
		return info
	}
	return expenseCategoryInfo[ExpenseOther]
}

// Expense is a single spend recorded against a trip's budget.
//
// Amount is always positive. Currency is carried per expense but totals are
// summed nominally across currencies without conversion — preserved behavior
// from the original application; see the note on stats.BudgetSummary.
type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Date        string          `json:"date"` // "2006-01-02"
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Notes       string          `json:"notes,omitempty"`
}
