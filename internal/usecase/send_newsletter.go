package usecase

import (
	"context"
	"strings"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/queue"
)

// SendNewsletterUseCase resolves the recipient list, persists the
// newsletter with per-recipient delivery rows, and enqueues a dispatch
// job. The actual fan-out happens in the background worker so the
// request returns immediately instead of blocking for the whole
// sequential send.
type SendNewsletterUseCase struct {
	Subscribers SubscriberRepositoryInterface
	Newsletters NewsletterRepositoryInterface
	Publisher   DispatchPublisher
}

func NewSendNewsletterUseCase(
	subscribers SubscriberRepositoryInterface,
	newsletters NewsletterRepositoryInterface,
	publisher DispatchPublisher,
) *SendNewsletterUseCase {
	return &SendNewsletterUseCase{
		Subscribers: subscribers,
		Newsletters: newsletters,
		Publisher:   publisher,
	}
}

func (uc *SendNewsletterUseCase) Execute(ctx context.Context, input SendNewsletterInput) (*SendNewsletterOutput, error) {
	if errs := ValidateSendNewsletterInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	var source []string
	if input.SendType == entity.SendTypeAll {
		emails, err := uc.Subscribers.ActiveEmails(ctx)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to load active subscribers: " + err.Error(),
			}
		}
		source = emails
	} else {
		source = input.ManualEmails
	}

	recipients := dedupeEmails(source)
	if len(recipients) == 0 {
		return nil, &DomainError{
			Code:    "NO_RECIPIENTS",
			Message: "No recipients to send to.",
		}
	}

	newsletter := entity.NewNewsletter(
		input.Title, input.Subject, input.Content,
		input.SendType, input.ManualEmails, recipients,
	)

	// Record first, publish second. If the broker rejects the job the
	// compensation removes the half-created record so no QUEUED
	// newsletter exists without a matching job.
	txn := NewTransaction()

	txn.AddOperation("create_newsletter", func(ctx context.Context) error {
		return uc.Newsletters.Create(ctx, newsletter)
	})

	txn.AddCompensation("delete_newsletter", func(ctx context.Context) error {
		return uc.Newsletters.Delete(ctx, newsletter.ID)
	})

	txn.AddOperation("publish_dispatch", func(ctx context.Context) error {
		return uc.Publisher.PublishDispatch(ctx, queue.DispatchPayload{NewsletterID: newsletter.ID})
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DISPATCH_ENQUEUE_ERROR",
			Message: "failed to queue newsletter dispatch: " + err.Error(),
		}
	}

	return &SendNewsletterOutput{
		NewsletterID:   newsletter.ID,
		RecipientCount: len(recipients),
		Status:         entity.NewsletterQueued,
		Message:        "Newsletter queued for dispatch",
	}, nil
}

// dedupeEmails case-folds and collapses duplicates, keeping first-seen
// order. "a@x.com" and "A@X.com" are the same recipient.
func dedupeEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	result := make([]string, 0, len(emails))

	for _, e := range emails {
		email := strings.ToLower(strings.TrimSpace(e))
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		result = append(result, email)
	}

	return result
}
