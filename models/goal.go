package models

import "time"

// Goal is a savings target. SavedAmount grows through explicit deposits;
// IsCompleted flips to true once SavedAmount reaches TargetAmount and is
// never cleared afterwards.
type Goal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	TargetAmount float64   `gorm:"not null" json:"targetAmount"`
	SavedAmount  float64   `gorm:"not null;default:0" json:"savedAmount"`
	TargetDate   time.Time `gorm:"not null" json:"targetDate"`
	Description  string    `gorm:"size:512" json:"description"`
	IsCompleted  bool      `gorm:"default:false" json:"isCompleted"`
}

// AddSavings applies a deposit and flips the completion flag when the target
// is reached. The transition is one-way.
func (g *Goal) AddSavings(amount float64) {
	g.SavedAmount += amount
	if g.SavedAmount >= g.TargetAmount {
		g.IsCompleted = true
	}
}
