package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/http/middleware"
)

// DeliverNewsletterUseCase is the worker side of the fan-out: it sends
// one email per recipient, strictly sequentially (the provider
// throttles bursts), and accounts for every recipient individually. A
// failure mid-sequence never undoes earlier sends and never aborts the
// remaining ones.
type DeliverNewsletterUseCase struct {
	Newsletters  NewsletterRepositoryInterface
	EmailService EmailService
}

func NewDeliverNewsletterUseCase(
	newsletters NewsletterRepositoryInterface,
	emailService EmailService,
) *DeliverNewsletterUseCase {
	return &DeliverNewsletterUseCase{
		Newsletters:  newsletters,
		EmailService: emailService,
	}
}

func (uc *DeliverNewsletterUseCase) Execute(ctx context.Context, newsletterID string) error {
	newsletter, err := uc.Newsletters.FindByID(ctx, newsletterID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Deleted between enqueue and dispatch. Nothing to do.
			log.Printf("⚠️ [DISPATCH] Newsletter %s no longer exists, skipping", newsletterID)
			return nil
		}
		return fmt.Errorf("failed to load newsletter %s: %w", newsletterID, err)
	}

	// Redelivered job for an already-processed newsletter: skip instead
	// of double-sending.
	if newsletter.Status != entity.NewsletterQueued {
		log.Printf("⚠️ [DISPATCH] Newsletter %s is %s, skipping redelivery", newsletterID, newsletter.Status)
		return nil
	}

	if err := uc.Newsletters.MarkStatus(ctx, newsletterID, entity.NewsletterSending); err != nil {
		return fmt.Errorf("failed to mark newsletter %s as sending: %w", newsletterID, err)
	}

	sent := 0
	for _, recipient := range newsletter.Recipients {
		if err := uc.EmailService.SendNewsletter(recipient, newsletter.Subject, newsletter.Content); err != nil {
			log.Printf("❌ [DISPATCH] %s -> %s failed: %v", newsletterID, recipient, err)
			uc.recordDelivery(ctx, newsletterID, recipient, entity.DeliveryFailed, err.Error())
			continue
		}

		sent++
		uc.recordDelivery(ctx, newsletterID, recipient, entity.DeliverySent, "")
	}

	status := entity.NewsletterSent
	switch {
	case sent == 0:
		status = entity.NewsletterFailed
	case sent < len(newsletter.Recipients):
		status = entity.NewsletterPartial
	}

	if err := uc.Newsletters.FinishDispatch(ctx, newsletterID, sent, status); err != nil {
		return fmt.Errorf("failed to finalize newsletter %s: %w", newsletterID, err)
	}

	middleware.RecordNewsletterDispatch(status)
	log.Printf("✅ [DISPATCH] Newsletter %s done: %d/%d sent (%s)", newsletterID, sent, len(newsletter.Recipients), status)
	return nil
}

// Delivery rows are accounting, not control flow: a write failure here
// must not abort the remaining sends.
func (uc *DeliverNewsletterUseCase) recordDelivery(ctx context.Context, newsletterID, email, status, errMsg string) {
	if err := uc.Newsletters.RecordDelivery(ctx, newsletterID, email, status, errMsg); err != nil {
		log.Printf("⚠️ [DISPATCH] Failed to record delivery %s -> %s: %v", newsletterID, email, err)
	}
}
