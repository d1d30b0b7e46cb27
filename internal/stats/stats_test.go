package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/stats"
)

func expense(cat domain.ExpenseCategory, amount float64) domain.Expense {
	return domain.Expense{
		ID:       domain.NewID(),
		TripID:   "trip-1",
		Date:     "2024-03-10",
		Category: cat,
		Amount:   amount,
		Currency: "THB",
	}
}

// ---- Budget ----------------------------------------------------------------

func TestBudget_OverBudget(t *testing.T) {
	trip := domain.Trip{Budget: 10000, Currency: "THB"}
	expenses := []domain.Expense{
		expense(domain.ExpenseFood, 7000),
		expense(domain.ExpenseTransport, 5000),
	}

	got := stats.Budget(trip, expenses)

	assert.Equal(t, 12000.0, got.TotalSpent)
	assert.Equal(t, -2000.0, got.Remaining)
	assert.InDelta(t, 120.0, got.Percent, 1e-9)
}

func TestBudget_ZeroBudgetNeverDivides(t *testing.T) {
	trip := domain.Trip{Budget: 0}
	expenses := []domain.Expense{expense(domain.ExpenseOther, 500)}

	got := stats.Budget(trip, expenses)

	assert.Equal(t, 500.0, got.TotalSpent)
	assert.Equal(t, -500.0, got.Remaining)
	assert.Zero(t, got.Percent)
}

func TestBudget_NoExpenses(t *testing.T) {
	got := stats.Budget(domain.Trip{Budget: 3000}, nil)

	assert.Zero(t, got.TotalSpent)
	assert.Equal(t, 3000.0, got.Remaining)
	assert.Zero(t, got.Percent)
}

func TestBudget_MixedCurrenciesSummedNominally(t *testing.T) {
	trip := domain.Trip{Budget: 1000, Currency: "THB"}
	usd := expense(domain.ExpenseShopping, 100)
	usd.Currency = "USD"
	expenses := []domain.Expense{expense(domain.ExpenseFood, 200), usd}

	got := stats.Budget(trip, expenses)

	// No conversion: 200 THB + 100 USD = 300.
	assert.Equal(t, 300.0, got.TotalSpent)
}

// ---- ByCategory ------------------------------------------------------------

func TestByCategory_AllCategoriesPresent(t *testing.T) {
	got := stats.ByCategory(nil)

	require.Len(t, got, len(domain.ExpenseCategories))
	for i, ct := range got {
		assert.Equal(t, domain.ExpenseCategories[i], ct.Category)
		assert.Zero(t, ct.Total)
		assert.Empty(t, ct.Expenses)
	}
}

func TestByCategory_TotalsSumToOverallTotal(t *testing.T) {
	expenses := []domain.Expense{
		expense(domain.ExpenseAccommodation, 4500),
		expense(domain.ExpenseFood, 320),
		expense(domain.ExpenseFood, 180),
		expense(domain.ExpenseShopping, 999.50),
	}

	byCat := stats.ByCategory(expenses)
	overall := stats.Budget(domain.Trip{Budget: 10000}, expenses)

	var sum float64
	for _, ct := range byCat {
		sum += ct.Total
	}
	assert.InDelta(t, overall.TotalSpent, sum, 1e-9)
}

func TestByCategory_GroupsExpenses(t *testing.T) {
	expenses := []domain.Expense{
		expense(domain.ExpenseFood, 100),
		expense(domain.ExpenseFood, 50),
		expense(domain.ExpenseTransport, 75),
	}

	got := stats.ByCategory(expenses)

	byCat := make(map[domain.ExpenseCategory]stats.CategoryTotal)
	for _, ct := range got {
		byCat[ct.Category] = ct
	}
	assert.Len(t, byCat[domain.ExpenseFood].Expenses, 2)
	assert.Equal(t, 150.0, byCat[domain.ExpenseFood].Total)
	assert.Equal(t, 75.0, byCat[domain.ExpenseTransport].Total)
	assert.Empty(t, byCat[domain.ExpenseShopping].Expenses)
}

// ---- Packing ---------------------------------------------------------------

func packingItem(cat domain.PackingCategory, packed bool) domain.PackingItem {
	return domain.PackingItem{
		ID:       domain.NewID(),
		TripID:   "trip-1",
		Category: cat,
		Item:     "thing",
		Quantity: 1,
		Packed:   packed,
	}
}

func TestPacking_EmptyList(t *testing.T) {
	got := stats.Packing(nil)

	assert.Zero(t, got.Total)
	assert.Zero(t, got.Packed)
	assert.Zero(t, got.Percent)
	assert.Len(t, got.Categories, len(domain.PackingCategories))
}

func TestPacking_OverallAndPerCategory(t *testing.T) {
	items := []domain.PackingItem{
		packingItem(domain.PackingClothes, true),
		packingItem(domain.PackingClothes, false),
		packingItem(domain.PackingElectronics, true),
	}

	got := stats.Packing(items)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Packed)
	assert.InDelta(t, 66.666, got.Percent, 0.01)

	byCat := make(map[domain.PackingCategory]stats.CategoryProgress)
	for _, cp := range got.Categories {
		byCat[cp.Category] = cp
	}
	assert.Equal(t, 2, byCat[domain.PackingClothes].Total)
	assert.Equal(t, 1, byCat[domain.PackingClothes].Packed)
	assert.Equal(t, 1, byCat[domain.PackingElectronics].Packed)
}

func TestPacking_PercentMonotonicAsItemsArePacked(t *testing.T) {
	items := []domain.PackingItem{
		packingItem(domain.PackingClothes, false),
		packingItem(domain.PackingToiletries, false),
		packingItem(domain.PackingOther, false),
	}

	prev := stats.Packing(items).Percent
	for i := range items {
		items[i].Packed = true
		cur := stats.Packing(items).Percent
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, 100.0, prev, 1e-9)
}

// ---- CompletedActivities ---------------------------------------------------

func TestCompletedActivities(t *testing.T) {
	day := domain.DayPlan{Activities: []domain.Activity{
		{Title: "Museum", Completed: true},
		{Title: "Lunch"},
		{Title: "Temple", Completed: true},
	}}

	assert.Equal(t, 2, stats.CompletedActivities(day))
	assert.Zero(t, stats.CompletedActivities(domain.DayPlan{}))
}
