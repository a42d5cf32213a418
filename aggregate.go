package main

import (
	"fmt"
	"time"

	"fintrack/models"
)

// BudgetNotification reports how much of a budget's limit is used.
type BudgetNotification struct {
	Category       models.Category `json:"category"`
	Limit          float64         `json:"limit"`
	TotalSpent     float64         `json:"totalSpent"`
	PercentageUsed float64         `json:"percentageUsed"`
	Notification   *string         `json:"notification"`
}

// BudgetRecommendation projects monthly spend and suggests a limit change.
type BudgetRecommendation struct {
	Category          models.Category `json:"category"`
	CurrentLimit      float64         `json:"currentLimit"`
	ProjectedSpending float64         `json:"projectedSpending"`
	Recommendation    string          `json:"recommendation"`
}

// BudgetSummary is the read-only projection used by the budget-summary report.
type BudgetSummary struct {
	Category models.Category `json:"category"`
	Limit    float64         `json:"limit"`
	Month    string          `json:"month"`
}

// TrendPoint is one entry of the spending-trend report.
type TrendPoint struct {
	Date     time.Time       `json:"date"`
	Amount   float64         `json:"amount"`
	Category models.Category `json:"category"`
}

// sumCategory totals every transaction in the category. Deliberately
// all-time and type-blind: the legacy aggregation never filtered by the
// budget's month or by expense type.
func sumCategory(txs []models.Transaction, category models.Category) float64 {
	var total float64
	for _, t := range txs {
		if t.Category == category {
			total += t.Amount
		}
	}
	return total
}

// buildBudgetNotifications computes per-budget usage and warning messages.
// The nearing branch is checked before the exceeded one, so at >=100% the
// nearing message still wins and the exceeded message is unreachable. This
// matches the legacy tie-break and is kept until product decides otherwise.
func buildBudgetNotifications(budgets []models.Budget, txs []models.Transaction) []BudgetNotification {
	out := make([]BudgetNotification, 0, len(budgets))
	for _, b := range budgets {
		totalSpent := sumCategory(txs, b.Category)
		pct := totalSpent / b.Limit * 100
		n := BudgetNotification{
			Category:       b.Category,
			Limit:          b.Limit,
			TotalSpent:     totalSpent,
			PercentageUsed: pct,
		}
		switch {
		case pct >= 80:
			msg := fmt.Sprintf("You are nearing your budget limit for %s (%.2f%%)", b.Category, pct)
			n.Notification = &msg
		case pct >= 100:
			msg := fmt.Sprintf("You have exceeded your budget limit for %s (%.2f%%)", b.Category, pct)
			n.Notification = &msg
		}
		out = append(out, n)
	}
	return out
}

// buildBudgetRecommendations projects monthly spend per budget as
// (total / day-of-month) * 30. The divisor is now's day regardless of which
// month the transactions fall in, so early-month calls skew high.
func buildBudgetRecommendations(budgets []models.Budget, txs []models.Transaction, now time.Time) []BudgetRecommendation {
	day := float64(now.Day())
	out := make([]BudgetRecommendation, 0, len(budgets))
	for _, b := range budgets {
		totalSpent := sumCategory(txs, b.Category)
		projected := totalSpent / day * 30
		rec := fmt.Sprintf("Your budget for %s is sufficient.", b.Category)
		if projected > b.Limit {
			rec = fmt.Sprintf("Consider increasing your budget for %s to at least %.2f", b.Category, projected)
		}
		out = append(out, BudgetRecommendation{
			Category:          b.Category,
			CurrentLimit:      b.Limit,
			ProjectedSpending: projected,
			Recommendation:    rec,
		})
	}
	return out
}

// summarizeBudgets projects budgets to the report shape.
func summarizeBudgets(budgets []models.Budget) []BudgetSummary {
	out := make([]BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetSummary{Category: b.Category, Limit: b.Limit, Month: b.Month})
	}
	return out
}

// trendPoints projects transactions to the spending-trend shape.
func trendPoints(txs []models.Transaction) []TrendPoint {
	out := make([]TrendPoint, 0, len(txs))
	for _, t := range txs {
		out = append(out, TrendPoint{Date: t.Date, Amount: t.Amount, Category: t.Category})
	}
	return out
}
