package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) CountByDaySince(ctx context.Context, since time.Time) (map[string]int, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockSubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockSubscriberRepository) DeactivateByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindAll(ctx context.Context) ([]entity.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ActiveEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockNewsletterRepository
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Create(ctx context.Context, n *entity.Newsletter) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNewsletterRepository) FindByID(ctx context.Context, id string) (*entity.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) FindAll(ctx context.Context) ([]entity.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsletterRepository) MarkStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockNewsletterRepository) RecordDelivery(ctx context.Context, newsletterID, email, status, errMsg string) error {
	args := m.Called(ctx, newsletterID, email, status, errMsg)
	return args.Error(0)
}

func (m *MockNewsletterRepository) FinishDispatch(ctx context.Context, id string, sentCount int, status string) error {
	args := m.Called(ctx, id, sentCount, status)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOTP(to, name string, code int, validity time.Duration) error {
	args := m.Called(to, name, code, validity)
	return args.Error(0)
}

func (m *MockEmailService) SendLeadConfirmation(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

func (m *MockEmailService) SendLeadNotification(to string, lead *entity.Lead) error {
	args := m.Called(to, lead)
	return args.Error(0)
}

func (m *MockEmailService) SendWelcome(to, unsubscribeLink string) error {
	args := m.Called(to, unsubscribeLink)
	return args.Error(0)
}

func (m *MockEmailService) SendNewsletter(to, subject, content string) error {
	args := m.Called(to, subject, content)
	return args.Error(0)
}

// MockDispatchPublisher
type MockDispatchPublisher struct {
	mock.Mock
}

func (m *MockDispatchPublisher) PublishDispatch(ctx context.Context, payload queue.DispatchPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
