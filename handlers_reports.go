package main

import (
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// reportRange parses the startDate/endDate query parameters. Reports require
// both; anything unparsable is a validation error.
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid startDate"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid endDate"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// spendingTrendsHandler lists the caller's expenses in the range,
// date-ascending.
func spendingTrendsHandler(c *gin.Context) {
	user := currentUser(c)
	start, end, ok := reportRange(c)
	if !ok {
		return
	}
	var txs []models.Transaction
	err := db.Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
		user.ID, models.TypeExpense, start, end).
		Order("date asc").
		Find(&txs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching spending trends"})
		return
	}
	c.JSON(http.StatusOK, trendPoints(txs))
}

// sumInRange totals one transaction type for a user within a date range.
func sumInRange(userID uint, txType string, start, end time.Time) (float64, error) {
	var total float64
	err := db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, txType, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func incomeVsExpensesHandler(c *gin.Context) {
	user := currentUser(c)
	start, end, ok := reportRange(c)
	if !ok {
		return
	}
	totalIncome, err := sumInRange(user.ID, models.TypeIncome, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching income vs expenses"})
		return
	}
	totalExpenses, err := sumInRange(user.ID, models.TypeExpense, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching income vs expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalIncome": totalIncome, "totalExpenses": totalExpenses})
}

// budgetSummaryHandler filters budgets by their month string. The comparison
// is lexicographic against the raw query values, matching the legacy
// behavior, so callers pass YYYY-MM style bounds.
func budgetSummaryHandler(c *gin.Context) {
	user := currentUser(c)
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "startDate and endDate are required"})
		return
	}
	var budgets []models.Budget
	err := db.Where("user_id = ? AND month >= ? AND month <= ?", user.ID, start, end).
		Find(&budgets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching budget summary"})
		return
	}
	c.JSON(http.StatusOK, summarizeBudgets(budgets))
}
