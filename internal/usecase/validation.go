package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSendOTPInput(input SendOTPInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	return errors
}

func ValidateSendNewsletterInput(input SendNewsletterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}
	if strings.TrimSpace(input.Content) == "" {
		errors = append(errors, ValidationError{"content", "is required"})
	}

	switch input.SendType {
	case "":
		errors = append(errors, ValidationError{"sendType", "is required"})
	case entity.SendTypeAll:
	case entity.SendTypeManual:
		if len(input.ManualEmails) == 0 {
			errors = append(errors, ValidationError{"manualEmails", "must not be empty for MANUAL send"})
		}
	default:
		errors = append(errors, ValidationError{"sendType", "must be ALL or MANUAL"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

func validationFailure(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: strings.TrimSuffix(msg, ", "),
	}
}
