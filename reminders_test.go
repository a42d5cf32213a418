package main

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fintrack/models"

	"github.com/google/uuid"
)

// fakeNotifier records sends and can be told to fail, standing in for the
// AMQP broker.
type fakeNotifier struct {
	fail bool
	sent []EmailMessage
}

func (f *fakeNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	if f.fail {
		return fmt.Errorf("broker down")
	}
	f.sent = append(f.sent, EmailMessage{To: to, Subject: subject, Body: body})
	return nil
}

// deliveredTo reports whether a message with the given body reached to.
func (f *fakeNotifier) deliveredTo(to, body string) bool {
	for _, m := range f.sent {
		if m.To == to && m.Body == body {
			return true
		}
	}
	return false
}

func loadReminder(t *testing.T, jobID string) models.Reminder {
	t.Helper()
	var reminder models.Reminder
	if err := db.Where("job_id = ?", jobID).First(&reminder).Error; err != nil {
		t.Fatalf("load reminder %s: %v", jobID, err)
	}
	return reminder
}

func TestReminderDispatchLifecycle(t *testing.T) {
	r := setupTestServer(t)
	userID, token := registerAndLogin(t, r, "reminded")
	var user models.User
	if err := db.First(&user, uint(userID)).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	message := fmt.Sprintf("electricity bill %d", time.Now().UnixNano())
	resp := performRequest(r, http.MethodPost, "/api/users/scheduleBillReminder",
		jsonBody(t, map[string]any{
			"remindAt": time.Now().Add(-time.Minute).Format(time.RFC3339),
			"message":  message,
		}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("schedule reminder failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	jobID := decodeBody(t, resp)["jobId"].(string)

	fake := &fakeNotifier{fail: true}
	notifier = fake
	t.Cleanup(func() { notifier = nil })

	// A failed send leaves the reminder unsent so the next poll retries it.
	dispatchDueReminders(context.Background())
	if reminder := loadReminder(t, jobID); reminder.Sent {
		t.Fatal("reminder marked sent despite failed dispatch")
	}

	// The next poll with a healthy broker delivers and marks it sent.
	fake.fail = false
	dispatchDueReminders(context.Background())
	reminder := loadReminder(t, jobID)
	if !reminder.Sent || reminder.SentAt == nil {
		t.Fatalf("reminder not marked sent after dispatch: %+v", reminder)
	}
	if !fake.deliveredTo(user.Email, message) {
		t.Fatalf("reminder email not delivered to %s: %v", user.Email, fake.sent)
	}

	// Sent reminders are not dispatched twice.
	dispatchDueReminders(context.Background())
	deliveries := 0
	for _, m := range fake.sent {
		if m.Body == message {
			deliveries++
		}
	}
	if deliveries != 1 {
		t.Fatalf("expected exactly one delivery, got %d", deliveries)
	}
}

func TestReminderNotDueStaysQueued(t *testing.T) {
	r := setupTestServer(t)
	_, token := registerAndLogin(t, r, "early")

	resp := performRequest(r, http.MethodPost, "/api/users/scheduleBillReminder",
		jsonBody(t, map[string]any{
			"remindAt": time.Now().Add(time.Hour).Format(time.RFC3339),
			"message":  "rent",
		}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("schedule reminder failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	jobID := decodeBody(t, resp)["jobId"].(string)

	fake := &fakeNotifier{}
	notifier = fake
	t.Cleanup(func() { notifier = nil })

	dispatchDueReminders(context.Background())
	if reminder := loadReminder(t, jobID); reminder.Sent {
		t.Fatal("future reminder was dispatched early")
	}
}

func TestReminderOrphanIsDropped(t *testing.T) {
	setupTestServer(t)

	orphan := models.Reminder{
		JobID:    uuid.NewString(),
		UserID:   4294000000, // no such user
		Message:  "orphan bill",
		RemindAt: time.Now().Add(-time.Minute),
	}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("create orphan reminder: %v", err)
	}

	fake := &fakeNotifier{}
	notifier = fake
	t.Cleanup(func() { notifier = nil })

	// The owner is gone: the row is marked sent without an email so it
	// doesn't poll forever.
	dispatchDueReminders(context.Background())
	reminder := loadReminder(t, orphan.JobID)
	if !reminder.Sent {
		t.Fatal("orphan reminder should be dropped (marked sent)")
	}
	for _, m := range fake.sent {
		if m.Body == "orphan bill" {
			t.Fatal("orphan reminder produced an email")
		}
	}
}
