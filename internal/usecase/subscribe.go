package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

type SubscribeUseCase struct {
	Subscribers  SubscriberRepositoryInterface
	EmailService EmailService
	FrontendURL  string // base URL for the unsubscribe link
}

func NewSubscribeUseCase(
	subscribers SubscriberRepositoryInterface,
	emailService EmailService,
	frontendURL string,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		Subscribers:  subscribers,
		EmailService: emailService,
		FrontendURL:  strings.TrimSuffix(frontendURL, "/"),
	}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, input SubscribeInput) (*SubscribeOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "Email is required",
		}
	}
	if !isValidEmail(email) {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "Email is invalid",
		}
	}

	subscriber, err := uc.Subscribers.FindByEmail(ctx, email)

	switch {
	case err == nil && subscriber.IsActive:
		return nil, &DomainError{
			Code:    "ALREADY_SUBSCRIBED",
			Message: "Email already subscribed",
		}

	case err == nil:
		// Previously unsubscribed: reactivate, keep the original token.
		if err := uc.Subscribers.SetActive(ctx, subscriber.ID, true); err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to reactivate subscriber: " + err.Error(),
			}
		}

	case errors.Is(err, entity.ErrNotFound):
		subscriber, err = entity.NewSubscriber(email)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "TOKEN_GENERATION_ERROR",
				Message: "failed to generate unsubscribe token: " + err.Error(),
			}
		}

		if err := uc.Subscribers.Create(ctx, subscriber); err != nil {
			// A concurrent subscribe won the unique index race.
			if errors.Is(err, entity.ErrDuplicateEmail) {
				return nil, &DomainError{
					Code:    "ALREADY_SUBSCRIBED",
					Message: "Email already subscribed",
				}
			}
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to create subscriber: " + err.Error(),
			}
		}

	default:
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to look up subscriber: " + err.Error(),
		}
	}

	// Welcome email is fire-and-forget: the subscription is durable
	// either way.
	unsubscribeLink := uc.FrontendURL + "/unsubscribe/" + subscriber.UnsubscribeToken
	go func(to, link string) {
		if err := uc.EmailService.SendWelcome(to, link); err != nil {
			log.Printf("⚠️ Welcome email to %s failed: %v", to, err)
		}
	}(subscriber.Email, unsubscribeLink)

	return &SubscribeOutput{Message: "Successfully subscribed"}, nil
}
