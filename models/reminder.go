package models

import "time"

// Reminder is a persisted bill-reminder job. Rows survive restarts; a worker
// polls for due unsent reminders and dispatches them as email notifications.
type Reminder struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
	// JobID is the externally visible identifier returned on registration.
	JobID    string     `gorm:"size:36;not null;uniqueIndex" json:"jobId"`
	UserID   uint       `gorm:"index;not null" json:"userId"`
	Message  string     `gorm:"size:512;not null" json:"message"`
	RemindAt time.Time  `gorm:"index;not null" json:"remindAt"`
	Sent     bool       `gorm:"default:false;index" json:"sent"`
	SentAt   *time.Time `json:"sentAt,omitempty"`
}
