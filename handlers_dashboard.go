package main

import (
	"net/http"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// sumByType totals one transaction type, optionally scoped to a user
// (userID 0 means system-wide).
func sumByType(userID uint, txType string) (float64, error) {
	var total float64
	q := db.Model(&models.Transaction{}).Where("type = ?", txType)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// adminDashboardHandler returns all users plus global transaction figures.
func adminDashboardHandler(c *gin.Context) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching admin dashboard data"})
		return
	}
	var totalTransactions int64
	if err := db.Model(&models.Transaction{}).Count(&totalTransactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching admin dashboard data"})
		return
	}
	totalIncome, err := sumByType(0, models.TypeIncome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching admin dashboard data"})
		return
	}
	totalExpenses, err := sumByType(0, models.TypeExpense)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching admin dashboard data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":             users,
		"totalTransactions": totalTransactions,
		"totalIncome":       totalIncome,
		"totalExpenses":     totalExpenses,
	})
}

// userDashboardHandler composes the caller's profile, five most recent
// transactions, budgets, goals and income/expense totals.
func userDashboardHandler(c *gin.Context) {
	user := currentUser(c)

	var transactions []models.Transaction
	if err := db.Where("user_id = ?", user.ID).Order("date desc").Limit(5).Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user dashboard data"})
		return
	}
	var budgets []models.Budget
	if err := db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user dashboard data"})
		return
	}
	var goals []models.Goal
	if err := db.Where("user_id = ?", user.ID).Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user dashboard data"})
		return
	}
	totalIncome, err := sumByType(user.ID, models.TypeIncome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user dashboard data"})
		return
	}
	totalExpenses, err := sumByType(user.ID, models.TypeExpense)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user dashboard data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"transactions":  transactions,
		"budgets":       budgets,
		"goals":         goals,
		"totalIncome":   totalIncome,
		"totalExpenses": totalExpenses,
	})
}
