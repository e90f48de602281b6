package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective customer captured through the contact form.
// A lead only reaches the database after the submitter proves control
// of the email address via OTP, so Verified is always true once persisted.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	Services  []string  `json:"services"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, email, phone, message string, services []string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Message:   message,
		Services:  services,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
