package models

import "time"

// Budget caps spending for one category in one month. Duplicate
// (user, category, month) rows are allowed.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Category  Category  `gorm:"size:32;not null" json:"category"`
	// "limit" is reserved in SQL, hence the column name.
	Limit float64 `gorm:"column:limit_amount;not null" json:"limit"`
	Month string  `gorm:"size:7;not null" json:"month"` // YYYY-MM
}
