package main

import (
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// createTransactionHandler records an income or expense. Amounts stated in a
// currency other than the owner's settlement currency are converted at the
// current rate; the original amount/currency are kept for audit.
func createTransactionHandler(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		Type              string     `json:"type" binding:"required"`
		Amount            float64    `json:"amount" binding:"required"`
		Currency          string     `json:"currency"`
		Category          string     `json:"category"`
		Tags              []string   `json:"tags"`
		Description       string     `json:"description"`
		IsRecurring       bool       `json:"isRecurring"`
		RecurrencePattern string     `json:"recurrencePattern"`
		RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
		Date              *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating transaction", "error": err.Error()})
		return
	}
	if !models.ValidType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating transaction", "error": "type must be income or expense"})
		return
	}
	if req.RecurrencePattern != "" && !models.ValidRecurrencePattern(req.RecurrencePattern) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating transaction", "error": "invalid recurrence pattern"})
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = user.BaseCurrency
	}
	converted := req.Amount
	if currency != user.BaseCurrency {
		rate, err := rateSource.Rate(c.Request.Context(), currency, user.BaseCurrency)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating transaction", "error": err.Error()})
			return
		}
		converted = req.Amount * rate
	}
	tx := models.Transaction{
		UserID:            user.ID,
		Type:              req.Type,
		Amount:            converted,
		Currency:          user.BaseCurrency,
		OriginalAmount:    req.Amount,
		OriginalCurrency:  currency,
		Category:          models.ParseCategory(req.Category),
		Tags:              req.Tags,
		Description:       req.Description,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		RecurrenceEndDate: req.RecurrenceEndDate,
		Date:              time.Now(),
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if err := db.Create(&tx).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating transaction", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func listTransactionsHandler(c *gin.Context) {
	user := currentUser(c)
	var txs []models.Transaction
	if err := db.Where("user_id = ?", user.ID).Find(&txs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error fetching transactions", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txs)
}

// fetchOwnedTransaction loads a transaction and applies the ownership
// predicate; misses and foreign records both read as not found.
func fetchOwnedTransaction(c *gin.Context) (*models.Transaction, bool) {
	user := currentUser(c)
	var tx models.Transaction
	if err := db.First(&tx, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return nil, false
	}
	if !owns(tx.UserID, user) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return nil, false
	}
	return &tx, true
}

func getTransactionHandler(c *gin.Context) {
	tx, ok := fetchOwnedTransaction(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tx)
}

// updateTransactionHandler merges caller-supplied fields over the existing
// record; zero values leave fields untouched. Edits to amount are taken as
// already being in the settlement currency: no conversion happens on update.
func updateTransactionHandler(c *gin.Context) {
	tx, ok := fetchOwnedTransaction(c)
	if !ok {
		return
	}
	var req struct {
		Type              string     `json:"type"`
		Amount            float64    `json:"amount"`
		Category          string     `json:"category"`
		Tags              []string   `json:"tags"`
		Description       string     `json:"description"`
		IsRecurring       bool       `json:"isRecurring"`
		RecurrencePattern string     `json:"recurrencePattern"`
		RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating transaction", "error": err.Error()})
		return
	}
	if req.Type != "" {
		if !models.ValidType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating transaction", "error": "type must be income or expense"})
			return
		}
		tx.Type = req.Type
	}
	if req.Amount != 0 {
		tx.Amount = req.Amount
	}
	if req.Category != "" {
		tx.Category = models.ParseCategory(req.Category)
	}
	if req.Tags != nil {
		tx.Tags = req.Tags
	}
	if req.Description != "" {
		tx.Description = req.Description
	}
	if req.IsRecurring {
		tx.IsRecurring = true
	}
	if req.RecurrencePattern != "" {
		if !models.ValidRecurrencePattern(req.RecurrencePattern) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating transaction", "error": "invalid recurrence pattern"})
			return
		}
		tx.RecurrencePattern = req.RecurrencePattern
	}
	if req.RecurrenceEndDate != nil {
		tx.RecurrenceEndDate = req.RecurrenceEndDate
	}
	if err := db.Save(tx).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating transaction", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tx)
}

func deleteTransactionHandler(c *gin.Context) {
	tx, ok := fetchOwnedTransaction(c)
	if !ok {
		return
	}
	if err := db.Delete(tx).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error deleting transaction", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction removed"})
}
