// Package stats computes read-only projections over a trip's dependent
// collections: budget totals, per-category breakdowns, packing progress, and
// day completion counts.
//
// Every function here is pure and total — inputs are never mutated, absent or
// empty collections yield zero-valued results, and nothing returns an error.
package stats

import "github.com/pkanjana/travel-planner/internal/domain"

// BudgetSummary is the headline budget position for a trip.
type BudgetSummary struct {
	Budget     float64 `json:"budget"`
	TotalSpent float64 `json:"totalSpent"`
	Remaining  float64 `json:"remaining"`  // negative when over budget
	Percent    float64 `json:"percent"`    // spent as % of budget; 0 when budget is 0
	Currency   string  `json:"currency"`
}

// CategoryTotal is the slice of a budget attributable to one expense category.
type CategoryTotal struct {
	Category domain.ExpenseCategory `json:"category"`
	Label    string                 `json:"label"`
	Glyph    string                 `json:"glyph"`
	Total    float64                `json:"total"`
	Expenses []domain.Expense       `json:"expenses"`
}

// Budget summarizes expenses against the trip's budget.
//
// Amounts are summed nominally regardless of each expense's own currency
// field — no conversion is attempted. This mirrors the original application
// and is a known quirk: a trip budgeted in THB with an expense recorded in
// USD simply adds the two numbers.
func Budget(trip domain.Trip, expenses []domain.Expense) BudgetSummary {
	var spent float64
	for _, e := range expenses {
		spent += e.Amount
	}

	s := BudgetSummary{
		Budget:     trip.Budget,
		TotalSpent: spent,
		Remaining:  trip.Budget - spent,
		Currency:   trip.Currency,
	}
	if trip.Budget > 0 {
		s.Percent = spent / trip.Budget * 100
	}
	return s
}

// ByCategory splits expenses into the six fixed categories, in category
// order. Every category is present in the result, including zero-valued
// ones; callers rendering a summary typically skip entries with no expenses.
func ByCategory(expenses []domain.Expense) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(domain.ExpenseCategories))
	for _, cat := range domain.ExpenseCategories {
		info := cat.Info()
		ct := CategoryTotal{Category: cat, Label: info.Label, Glyph: info.Glyph}
		for _, e := range expenses {
			if e.Category == cat {
				ct.Expenses = append(ct.Expenses, e)
				ct.Total += e.Amount
			}
		}
		totals = append(totals, ct)
	}
	return totals
}

// PackingProgress is the packed/total position of a packing checklist.
type PackingProgress struct {
	Packed     int                `json:"packed"`
	Total      int                `json:"total"`
	Percent    float64            `json:"percent"` // 0 when the list is empty
	Categories []CategoryProgress `json:"categories"`
}

// CategoryProgress is packing progress within one category.
type CategoryProgress struct {
	Category domain.PackingCategory `json:"category"`
	Label    string                 `json:"label"`
	Glyph    string                 `json:"glyph"`
	Packed   int                    `json:"packed"`
	Total    int                    `json:"total"`
}

// Packing computes overall and per-category packing progress.
func Packing(items []domain.PackingItem) PackingProgress {
	p := PackingProgress{
		Categories: make([]CategoryProgress, 0, len(domain.PackingCategories)),
	}

	for _, cat := range domain.PackingCategories {
		info := cat.Info()
		cp := CategoryProgress{Category: cat, Label: info.Label, Glyph: info.Glyph}
		for _, item := range items {
			if item.Category != cat {
				continue
			}
			cp.Total++
			if item.Packed {
				cp.Packed++
			}
		}
		p.Packed += cp.Packed
		p.Total += cp.Total
		p.Categories = append(p.Categories, cp)
	}

	if p.Total > 0 {
		p.Percent = float64(p.Packed) / float64(p.Total) * 100
	}
	return p
}

// CompletedActivities counts the activities on a day plan marked completed.
func CompletedActivities(day domain.DayPlan) int {
	var n int
	for _, a := range day.Activities {
		if a.Completed {
			n++
		}
	}
	return n
}
