package main

import (
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

func createGoalHandler(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		Title        string    `json:"title" binding:"required"`
		TargetAmount float64   `json:"targetAmount" binding:"required"`
		TargetDate   time.Time `json:"targetDate" binding:"required"`
		Description  string    `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating goal", "error": err.Error()})
		return
	}
	goal := models.Goal{
		UserID:       user.ID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		SavedAmount:  0,
		TargetDate:   req.TargetDate,
		Description:  req.Description,
	}
	if err := db.Create(&goal).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating goal", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func listGoalsHandler(c *gin.Context) {
	user := currentUser(c)
	var goals []models.Goal
	if err := db.Where("user_id = ?", user.ID).Find(&goals).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching goals", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func fetchOwnedGoal(c *gin.Context) (*models.Goal, bool) {
	user := currentUser(c)
	var goal models.Goal
	if err := db.First(&goal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
		return nil, false
	}
	if !owns(goal.UserID, user) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
		return nil, false
	}
	return &goal, true
}

func getGoalHandler(c *gin.Context) {
	goal, ok := fetchOwnedGoal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, goal)
}

// updateGoalHandler merges caller-supplied fields. Completion is one-way:
// a true isCompleted is never cleared, and lowering savedAmount below the
// target does not reset it.
func updateGoalHandler(c *gin.Context) {
	goal, ok := fetchOwnedGoal(c)
	if !ok {
		return
	}
	var req struct {
		Title        string     `json:"title"`
		TargetAmount float64    `json:"targetAmount"`
		SavedAmount  float64    `json:"savedAmount"`
		TargetDate   *time.Time `json:"targetDate"`
		Description  string     `json:"description"`
		IsCompleted  bool       `json:"isCompleted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating goal", "error": err.Error()})
		return
	}
	if req.Title != "" {
		goal.Title = req.Title
	}
	if req.TargetAmount != 0 {
		goal.TargetAmount = req.TargetAmount
	}
	if req.SavedAmount != 0 {
		goal.SavedAmount = req.SavedAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}
	if req.Description != "" {
		goal.Description = req.Description
	}
	if req.IsCompleted {
		goal.IsCompleted = true
	}
	if err := db.Save(goal).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating goal", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func deleteGoalHandler(c *gin.Context) {
	goal, ok := fetchOwnedGoal(c)
	if !ok {
		return
	}
	if err := db.Delete(goal).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error deleting goal", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal removed"})
}

// addSavingsHandler deposits into a goal and flips completion once the
// target is reached.
func addSavingsHandler(c *gin.Context) {
	goal, ok := fetchOwnedGoal(c)
	if !ok {
		return
	}
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding savings", "error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding savings", "error": "amount must be positive"})
		return
	}
	goal.AddSavings(req.Amount)
	if err := db.Save(goal).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding savings", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
