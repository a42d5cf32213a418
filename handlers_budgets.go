package main

import (
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// setBudgetHandler creates a budget for one category and month. Duplicate
// (user, category, month) budgets are not rejected.
func setBudgetHandler(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		Category string  `json:"category" binding:"required"`
		Limit    float64 `json:"limit" binding:"required"`
		Month    string  `json:"month"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error setting budget", "error": err.Error()})
		return
	}
	month := req.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	budget := models.Budget{
		UserID:   user.ID,
		Category: models.ParseCategory(req.Category),
		Limit:    req.Limit,
		Month:    month,
	}
	if err := db.Create(&budget).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error setting budget", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, budget)
}

func listBudgetsHandler(c *gin.Context) {
	user := currentUser(c)
	var budgets []models.Budget
	if err := db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching budgets", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func fetchOwnedBudget(c *gin.Context) (*models.Budget, bool) {
	user := currentUser(c)
	var budget models.Budget
	if err := db.First(&budget, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return nil, false
	}
	if !owns(budget.UserID, user) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return nil, false
	}
	return &budget, true
}

// updateBudgetHandler changes the spending limit only.
func updateBudgetHandler(c *gin.Context) {
	budget, ok := fetchOwnedBudget(c)
	if !ok {
		return
	}
	var req struct {
		Limit float64 `json:"limit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating budget", "error": err.Error()})
		return
	}
	budget.Limit = req.Limit
	if err := db.Save(budget).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating budget", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, budget)
}

func deleteBudgetHandler(c *gin.Context) {
	budget, ok := fetchOwnedBudget(c)
	if !ok {
		return
	}
	if err := db.Delete(budget).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error deleting budget", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// budgetNotificationsHandler reports usage against each of the caller's
// budgets.
func budgetNotificationsHandler(c *gin.Context) {
	user := currentUser(c)
	var budgets []models.Budget
	if err := db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error checking notifications", "error": err.Error()})
		return
	}
	var txs []models.Transaction
	if err := db.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error checking notifications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildBudgetNotifications(budgets, txs))
}

// budgetRecommendationsHandler suggests limit adjustments from projected
// monthly spend.
func budgetRecommendationsHandler(c *gin.Context) {
	user := currentUser(c)
	var budgets []models.Budget
	if err := db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching recommendations", "error": err.Error()})
		return
	}
	var txs []models.Transaction
	if err := db.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching recommendations", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildBudgetRecommendations(budgets, txs, time.Now()))
}
