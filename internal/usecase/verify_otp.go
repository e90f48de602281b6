package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

type VerifyOTPUseCase struct {
	Leads        LeadRepositoryInterface
	Sessions     OTPSessionStore
	EmailService EmailService
	NotifyEmail  string // internal staff address for new-lead alerts
}

func NewVerifyOTPUseCase(
	leads LeadRepositoryInterface,
	sessions OTPSessionStore,
	emailService EmailService,
	notifyEmail string,
) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		Leads:        leads,
		Sessions:     sessions,
		EmailService: emailService,
		NotifyEmail:  notifyEmail,
	}
}

func (uc *VerifyOTPUseCase) Execute(ctx context.Context, input VerifyOTPInput) (*VerifyOTPOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	session, ok := uc.Sessions.Get(email)
	if !ok {
		return nil, &DomainError{
			Code:    "OTP_NOT_FOUND",
			Message: "OTP expired or not found.",
		}
	}

	code, err := strconv.Atoi(strings.TrimSpace(input.OTP))
	if err != nil || code != session.Code {
		// Session is retained so the user can retry within the window.
		return nil, &DomainError{
			Code:    "OTP_INVALID",
			Message: "Invalid OTP.",
		}
	}

	lead, err := entity.NewLead(session.Name, session.Email, session.Phone, session.Message, session.Services)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}
	lead.Verified = true

	if err := uc.Leads.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			// Someone verified this email first. Drop the session too.
			uc.Sessions.Delete(email)
			return nil, &DomainError{
				Code:    "DUPLICATE_LEAD",
				Message: "Email already exists. Please use another email ID.",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	uc.Sessions.Delete(email)

	// The lead is durable at this point. The two emails are best-effort:
	// a dispatch failure is logged and reported, never rolled back.
	emailsSent := true

	if err := uc.EmailService.SendLeadConfirmation(lead.Email, lead.Name); err != nil {
		log.Printf("⚠️ Lead %s saved but confirmation email failed: %v", lead.ID, err)
		emailsSent = false
	}

	if err := uc.EmailService.SendLeadNotification(uc.NotifyEmail, lead); err != nil {
		log.Printf("⚠️ Lead %s saved but staff notification failed: %v", lead.ID, err)
		emailsSent = false
	}

	message := "Lead captured, confirmation sent, HR notified."
	if !emailsSent {
		message = "Lead captured. Some notification emails could not be delivered."
	}

	return &VerifyOTPOutput{
		LeadID:     lead.ID,
		Message:    message,
		EmailsSent: emailsSent,
	}, nil
}
