package usecase

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/bigwigmedia/bigwig-backend/internal/infra/otp"
)

// What happens when an OTP is requested while a session is still
// pending for the same email.
const (
	ResendPolicyReplace = "replace" // new code invalidates the old one
	ResendPolicyReject  = "reject"  // refuse until the pending session expires
)

type SendOTPUseCase struct {
	Leads        LeadRepositoryInterface
	Sessions     OTPSessionStore
	EmailService EmailService
	OTPValidity  time.Duration
	ResendPolicy string
}

func NewSendOTPUseCase(
	leads LeadRepositoryInterface,
	sessions OTPSessionStore,
	emailService EmailService,
	otpValidity time.Duration,
	resendPolicy string,
) *SendOTPUseCase {
	if resendPolicy != ResendPolicyReject {
		resendPolicy = ResendPolicyReplace
	}
	return &SendOTPUseCase{
		Leads:        leads,
		Sessions:     sessions,
		EmailService: emailService,
		OTPValidity:  otpValidity,
		ResendPolicy: resendPolicy,
	}
}

func (uc *SendOTPUseCase) Execute(ctx context.Context, input SendOTPInput) (*SendOTPOutput, error) {
	if errs := ValidateSendOTPInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Point lookup only; the unique index on leads.email is the real
	// guard against a concurrent double-submit.
	exists, err := uc.Leads.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to check for existing lead: " + err.Error(),
		}
	}
	if exists {
		return nil, &DomainError{
			Code:    "DUPLICATE_LEAD",
			Message: "Email already exists. Please use another email ID.",
		}
	}

	if uc.ResendPolicy == ResendPolicyReject {
		if _, pending := uc.Sessions.Get(email); pending {
			return nil, &DomainError{
				Code:    "OTP_PENDING",
				Message: "An OTP was already sent to this email. Please wait for it to expire.",
			}
		}
	}

	code := 100000 + rand.Intn(900000)

	uc.Sessions.Put(email, otp.Session{
		Code:     code,
		Name:     input.Name,
		Email:    email,
		Phone:    input.Phone,
		Message:  input.Message,
		Services: input.Services,
		IssuedAt: time.Now(),
	})

	if err := uc.EmailService.SendOTP(email, input.Name, code, uc.OTPValidity); err != nil {
		// The session stays: a retry within the window re-issues a
		// fresh code anyway under the replace policy.
		return nil, &TechnicalError{
			Code:    "EMAIL_DISPATCH_ERROR",
			Message: "failed to send OTP email: " + err.Error(),
		}
	}

	return &SendOTPOutput{Message: "OTP sent to email."}, nil
}
