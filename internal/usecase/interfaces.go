package usecase

import (
	"context"
	"time"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/otp"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	CountByDaySince(ctx context.Context, since time.Time) (map[string]int, error)
}

type SubscriberRepositoryInterface interface {
	Create(ctx context.Context, sub *entity.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	SetActive(ctx context.Context, id string, active bool) error
	DeactivateByToken(ctx context.Context, token string) error
	FindAll(ctx context.Context) ([]entity.Subscriber, error)
	ActiveEmails(ctx context.Context) ([]string, error)
}

type NewsletterRepositoryInterface interface {
	// Create persists the newsletter together with one PENDING delivery
	// row per recipient, atomically.
	Create(ctx context.Context, n *entity.Newsletter) error
	FindByID(ctx context.Context, id string) (*entity.Newsletter, error)
	FindAll(ctx context.Context) ([]entity.Newsletter, error)
	Delete(ctx context.Context, id string) error
	MarkStatus(ctx context.Context, id, status string) error
	RecordDelivery(ctx context.Context, newsletterID, email, status, errMsg string) error
	FinishDispatch(ctx context.Context, id string, sentCount int, status string) error
}

// OTPSessionStore keeps pending lead submissions keyed by email, with a
// TTL enforced by the backing cache. The in-process implementation
// lives in infra/otp; a shared cache can replace it without touching
// the flows.
type OTPSessionStore interface {
	Put(email string, session otp.Session)
	Get(email string) (otp.Session, bool)
	Delete(email string)
}

type EmailService interface {
	SendOTP(to, name string, code int, validity time.Duration) error
	SendLeadConfirmation(to, name string) error
	SendLeadNotification(to string, lead *entity.Lead) error
	SendWelcome(to, unsubscribeLink string) error
	SendNewsletter(to, subject, content string) error
}

type DispatchPublisher interface {
	PublishDispatch(ctx context.Context, payload queue.DispatchPayload) error
}
