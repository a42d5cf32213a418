package main

import (
	"context"
	"log"
	"time"

	"fintrack/models"

	"github.com/google/uuid"
)

// scheduleReminder persists a bill reminder so it survives restarts.
func scheduleReminder(userID uint, remindAt time.Time, message string) (*models.Reminder, error) {
	reminder := models.Reminder{
		JobID:    uuid.NewString(),
		UserID:   userID,
		Message:  message,
		RemindAt: remindAt,
	}
	if err := db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func reminderPollInterval() time.Duration {
	if v := envOr("REMINDER_POLL_INTERVAL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("invalid REMINDER_POLL_INTERVAL %q, using default", v)
	}
	return 30 * time.Second
}

// runReminderWorker polls for due reminders until the context is cancelled.
func runReminderWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("reminder worker stopped:", ctx.Err())
			return
		case <-ticker.C:
			dispatchDueReminders(ctx)
		}
	}
}

// dispatchDueReminders sends every unsent reminder whose time has passed.
// One attempt per poll: a failed send stays unsent and is simply due again
// on the next tick.
func dispatchDueReminders(ctx context.Context) {
	if notifier == nil {
		return
	}
	var due []models.Reminder
	if err := db.Where("sent = ? AND remind_at <= ?", false, time.Now()).Find(&due).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}
	for i := range due {
		reminder := &due[i]
		var user models.User
		if err := db.First(&user, reminder.UserID).Error; err != nil {
			// Owner is gone; mark sent so the row doesn't poll forever.
			log.Printf("reminder %s: user %d not found, dropping", reminder.JobID, reminder.UserID)
			markReminderSent(reminder)
			continue
		}
		if err := notifier.SendEmail(ctx, user.Email, "Bill Payment Reminder", reminder.Message); err != nil {
			log.Printf("reminder %s: send failed: %v", reminder.JobID, err)
			continue
		}
		markReminderSent(reminder)
	}
}

func markReminderSent(reminder *models.Reminder) {
	now := time.Now()
	reminder.Sent = true
	reminder.SentAt = &now
	if err := db.Save(reminder).Error; err != nil {
		log.Printf("reminder %s: failed to mark sent: %v", reminder.JobID, err)
	}
}
