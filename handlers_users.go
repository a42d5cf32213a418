package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// userResponse is the public projection of a user record plus a fresh token.
func userResponse(user models.User, token string) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	}
}

func registerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data", "error": err.Error()})
		return
	}
	user, err := RegisterUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data", "error": err.Error()})
		return
	}
	token, err := generateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, userResponse(user, token))
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	token, err := generateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user, token))
}

func profileHandler(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"baseCurrency": user.BaseCurrency,
	})
}

// setBaseCurrencyHandler updates the caller's settlement currency. Existing
// transactions are never re-converted.
func setBaseCurrencyHandler(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		BaseCurrency string `json:"baseCurrency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user.BaseCurrency = strings.ToUpper(strings.TrimSpace(req.BaseCurrency))
	if err := db.Save(user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating base currency", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Base currency updated successfully", "user": user})
}

func listUsersHandler(c *gin.Context) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching users", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func getUserHandler(c *gin.Context) {
	caller := currentUser(c)
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if !owns(user.ID, caller) && !caller.IsAdmin() {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func updateUserHandler(c *gin.Context) {
	caller := currentUser(c)
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if !owns(user.ID, caller) && !caller.IsAdmin() {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	// Only admins may change roles.
	if req.Role != "" && caller.IsAdmin() {
		if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		user.Role = req.Role
	}
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func deleteUserHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error deleting user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}

// notifyUnusualSpendingHandler dispatches a one-off spending alert email to
// any user. Admin only. Single attempt, no retry.
func notifyUnusualSpendingHandler(c *gin.Context) {
	var req struct {
		UserID  uint   `json:"userId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if notifier == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Notifications are not configured"})
		return
	}
	if err := notifier.SendEmail(c.Request.Context(), user.Email, "Unusual Spending Alert", req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending notification", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent successfully"})
}

// scheduleBillReminderHandler persists a bill reminder for the caller. The
// reminder worker dispatches it once due; registrations survive restarts.
func scheduleBillReminderHandler(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		RemindAt time.Time `json:"remindAt" binding:"required"`
		Message  string    `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	reminder, err := scheduleReminder(user.ID, req.RemindAt, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error scheduling reminder", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reminder scheduled successfully", "jobId": reminder.JobID})
}
