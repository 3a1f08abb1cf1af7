package reports

import (
	"testing"

	"budgetbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryBreakdownGrouping(t *testing.T) {
	rows := []Row{
		{CategoryID: 1, CategoryName: "Food", Type: models.TypeExpense, Amount: 100},
		{CategoryID: 2, CategoryName: "Salary", Type: models.TypeIncome, Amount: 500},
		{CategoryID: 1, CategoryName: "Food", Type: models.TypeExpense, Amount: 50},
		{CategoryID: 1, CategoryName: "Food", Type: models.TypeIncome, Amount: 10},
	}

	totals := CategoryBreakdown(rows)
	require.Len(t, totals, 2)

	// insertion order: first appearance wins
	assert.Equal(t, 1, totals[0].CategoryID)
	assert.Equal(t, "Food", totals[0].CategoryName)
	assert.Equal(t, 150.0, totals[0].TotalExpense)
	assert.Equal(t, 10.0, totals[0].TotalIncome)

	assert.Equal(t, 2, totals[1].CategoryID)
	assert.Equal(t, 500.0, totals[1].TotalIncome)
	assert.Zero(t, totals[1].TotalExpense)
}

func TestCategoryBreakdownUnknownFallback(t *testing.T) {
	totals := CategoryBreakdown([]Row{{CategoryID: 7, Type: models.TypeExpense, Amount: 5}})
	require.Len(t, totals, 1)
	assert.Equal(t, UnknownCategory, totals[0].CategoryName)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

// Two runs over the same rows must agree as sets even if fetch order varies.
func TestCategoryBreakdownIdempotentAsSet(t *testing.T) {
	rows := []Row{
		{CategoryID: 1, CategoryName: "Food", Type: models.TypeExpense, Amount: 10},
		{CategoryID: 2, CategoryName: "Bills", Type: models.TypeExpense, Amount: 20},
	}
	shuffled := []Row{rows[1], rows[0]}

	asSet := func(totals []models.CategoryTotal) map[int]models.CategoryTotal {
		m := make(map[int]models.CategoryTotal, len(totals))
		for _, t := range totals {
			m[t.CategoryID] = t
		}
		return m
	}
	assert.Equal(t, asSet(CategoryBreakdown(rows)), asSet(CategoryBreakdown(shuffled)))
}

func TestExpenseShares(t *testing.T) {
	totals := []models.CategoryTotal{
		{CategoryID: 1, TotalExpense: 75},
		{CategoryID: 2, TotalExpense: 25},
	}
	shares := ExpenseShares(totals)
	require.Len(t, shares, 2)
	assert.Equal(t, 75, shares[0].Percentage)
	assert.Equal(t, 25, shares[1].Percentage)
}

func TestExpenseSharesRounding(t *testing.T) {
	totals := []models.CategoryTotal{
		{CategoryID: 1, TotalExpense: 1},
		{CategoryID: 2, TotalExpense: 2},
	}
	shares := ExpenseShares(totals)
	assert.Equal(t, 33, shares[0].Percentage)
	assert.Equal(t, 67, shares[1].Percentage)
}

// Zero total expenses yields 0% everywhere, never NaN or a panic.
func TestExpenseSharesZeroTotal(t *testing.T) {
	totals := []models.CategoryTotal{
		{CategoryID: 1, TotalIncome: 500},
		{CategoryID: 2},
	}
	for _, s := range ExpenseShares(totals) {
		assert.Equal(t, 0, s.Percentage)
	}
}
