package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is an opted-in newsletter recipient. Subscribers are never
// hard-deleted: unsubscribing flips IsActive to false and a later
// subscribe call reactivates the same record with the same token.
type Subscriber struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	IsActive         bool      `json:"is_active"`
	UnsubscribeToken string    `json:"unsubscribe_token"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewSubscriber mints the unsubscribe token exactly once, at creation.
// The token is never rotated afterwards.
func NewSubscriber(email string) (*Subscriber, error) {
	token, err := newUnsubscribeToken()
	if err != nil {
		return nil, err
	}

	return &Subscriber{
		ID:               uuid.New().String(),
		Email:            strings.ToLower(strings.TrimSpace(email)),
		IsActive:         true,
		UnsubscribeToken: token,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}, nil
}

// 24 random bytes, hex-encoded. Effectively unguessable.
func newUnsubscribeToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
