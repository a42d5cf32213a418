package main

import (
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(category models.Category, amount float64) models.Transaction {
	return models.Transaction{Type: models.TypeExpense, Category: category, Amount: amount}
}

func TestBudgetNotificationsNearing(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 500, Month: "2026-08"}}
	txs := []models.Transaction{
		expense(models.CategoryFood, 300),
		expense(models.CategoryFood, 150),
		expense(models.CategoryUtilities, 999), // other category must not count
	}

	out := buildBudgetNotifications(budgets, txs)
	require.Len(t, out, 1)
	assert.Equal(t, 450.0, out[0].TotalSpent)
	assert.Equal(t, 90.0, out[0].PercentageUsed)
	require.NotNil(t, out[0].Notification)
	assert.Contains(t, *out[0].Notification, "nearing")
}

func TestBudgetNotificationsBelowThreshold(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 500}}
	txs := []models.Transaction{expense(models.CategoryFood, 100)}

	out := buildBudgetNotifications(budgets, txs)
	require.Len(t, out, 1)
	assert.Equal(t, 20.0, out[0].PercentageUsed)
	assert.Nil(t, out[0].Notification)
}

// Pins the legacy tie-break: the >=80 branch is evaluated first, so an
// exceeded budget still gets the "nearing" message and the "exceeded" text
// is unreachable.
func TestBudgetNotificationsExceededStillReportsNearing(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 500}}
	txs := []models.Transaction{expense(models.CategoryFood, 600)}

	out := buildBudgetNotifications(budgets, txs)
	require.Len(t, out, 1)
	assert.Equal(t, 120.0, out[0].PercentageUsed)
	require.NotNil(t, out[0].Notification)
	assert.Contains(t, *out[0].Notification, "nearing")
	assert.NotContains(t, *out[0].Notification, "exceeded")
}

// Pins the legacy aggregation scope: sums are all-time and type-blind, so
// income in the same category counts against the budget too.
func TestBudgetNotificationsSumIsTypeBlind(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategorySavings, Limit: 100, Month: "2026-08"}}
	txs := []models.Transaction{
		expense(models.CategorySavings, 40),
		{Type: models.TypeIncome, Category: models.CategorySavings, Amount: 50},
		// A transaction from another month still counts.
		{Type: models.TypeExpense, Category: models.CategorySavings, Amount: 10,
			Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := buildBudgetNotifications(budgets, txs)
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].TotalSpent)
}

func TestBudgetRecommendationsProjection(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 500}}
	txs := []models.Transaction{expense(models.CategoryFood, 200)}
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC) // day 10

	out := buildBudgetRecommendations(budgets, txs, now)
	require.Len(t, out, 1)
	// (200 / 10) * 30 = 600 > 500
	assert.Equal(t, 600.0, out[0].ProjectedSpending)
	assert.Contains(t, out[0].Recommendation, "Consider increasing")
	assert.Contains(t, out[0].Recommendation, "600.00")
}

func TestBudgetRecommendationsSufficient(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 500}}
	txs := []models.Transaction{expense(models.CategoryFood, 200)}
	now := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC) // day 20

	out := buildBudgetRecommendations(budgets, txs, now)
	require.Len(t, out, 1)
	// (200 / 20) * 30 = 300 <= 500
	assert.Equal(t, 300.0, out[0].ProjectedSpending)
	assert.Contains(t, out[0].Recommendation, "sufficient")
}

// The projection divides by the current calendar day regardless of which
// month the transactions belong to; early-month calls skew high.
func TestBudgetRecommendationsDayOfMonthSkew(t *testing.T) {
	budgets := []models.Budget{{Category: models.CategoryFood, Limit: 10000}}
	txs := []models.Transaction{
		{Type: models.TypeExpense, Category: models.CategoryFood, Amount: 300,
			Date: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)}, // last month
	}
	firstOfMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	out := buildBudgetRecommendations(budgets, txs, firstOfMonth)
	require.Len(t, out, 1)
	// (300 / 1) * 30: last month's spend projected as if it all happened today.
	assert.Equal(t, 9000.0, out[0].ProjectedSpending)
}

func TestSummarizeBudgets(t *testing.T) {
	budgets := []models.Budget{
		{Category: models.CategoryFood, Limit: 500, Month: "2026-07"},
		{Category: models.CategoryUtilities, Limit: 120, Month: "2026-08"},
	}

	out := summarizeBudgets(budgets)
	require.Len(t, out, 2)
	assert.Equal(t, BudgetSummary{Category: models.CategoryFood, Limit: 500, Month: "2026-07"}, out[0])
}

func TestTrendPoints(t *testing.T) {
	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{Type: models.TypeExpense, Category: models.CategoryFood, Amount: 12.5, Date: date},
	}

	out := trendPoints(txs)
	require.Len(t, out, 1)
	assert.Equal(t, TrendPoint{Date: date, Amount: 12.5, Category: models.CategoryFood}, out[0])
}
