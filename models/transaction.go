package models

import "time"

// Transaction types and recurrence patterns.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

var recurrencePatterns = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

// ValidType reports whether t is income or expense.
func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// ValidRecurrencePattern reports whether p is one of daily/weekly/monthly/yearly.
func ValidRecurrencePattern(p string) bool {
	return recurrencePatterns[p]
}

// Transaction represents a single income or expense belonging to a user.
// Amount is always in the owner's settlement currency at creation time; the
// original amount/currency are preserved for audit when a conversion occurred.
type Transaction struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	UserID            uint       `gorm:"index;not null" json:"userId"`
	Type              string     `gorm:"size:16;not null" json:"type"`
	Amount            float64    `gorm:"not null" json:"amount"`
	Currency          string     `gorm:"size:8;not null;default:USD" json:"currency"`
	OriginalAmount    float64    `json:"originalAmount"`
	OriginalCurrency  string     `gorm:"size:8" json:"originalCurrency"`
	Category          Category   `gorm:"size:32;not null;default:Other" json:"category"`
	Tags              []string   `gorm:"serializer:json" json:"tags"`
	Description       string     `gorm:"size:512" json:"description"`
	IsRecurring       bool       `gorm:"default:false" json:"isRecurring"`
	RecurrencePattern string     `gorm:"size:16" json:"recurrencePattern,omitempty"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate,omitempty"`
	Date              time.Time  `gorm:"index;not null" json:"date"`
}
