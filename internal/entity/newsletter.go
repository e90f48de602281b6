package entity

import (
	"time"

	"github.com/google/uuid"
)

// How a newsletter resolves its recipients.
const (
	SendTypeAll    = "ALL"    // every active subscriber
	SendTypeManual = "MANUAL" // admin-supplied address list
)

// Dispatch lifecycle of a newsletter.
const (
	NewsletterQueued  = "QUEUED"
	NewsletterSending = "SENDING"
	NewsletterSent    = "SENT"
	NewsletterPartial = "PARTIAL" // some recipients failed
	NewsletterFailed  = "FAILED"
)

// Per-recipient delivery states.
const (
	DeliveryPending = "PENDING"
	DeliverySent    = "SENT"
	DeliveryFailed  = "FAILED"
)

// Newsletter is an append-only record of one send operation. Recipients
// is a snapshot resolved at creation time; unsubscribes that happen
// later never rewrite history.
type Newsletter struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Content      string    `json:"content"` // HTML body
	SendType     string    `json:"send_type"`
	ManualEmails []string  `json:"manual_emails,omitempty"`
	Recipients   []string  `json:"recipients"`
	SentCount    int       `json:"sent_count"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Delivery is the per-recipient outcome of a newsletter dispatch.
type Delivery struct {
	NewsletterID string     `json:"newsletter_id"`
	Email        string     `json:"email"`
	Status       string     `json:"status"`
	Error        string     `json:"error,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

func NewNewsletter(title, subject, content, sendType string, manualEmails, recipients []string) *Newsletter {
	if sendType != SendTypeManual {
		manualEmails = nil
	}

	return &Newsletter{
		ID:           uuid.New().String(),
		Title:        title,
		Subject:      subject,
		Content:      content,
		SendType:     sendType,
		ManualEmails: manualEmails,
		Recipients:   recipients,
		Status:       NewsletterQueued,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
