package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendOTP delivers the one-time passcode. The validity window stated in
// the email matches the TTL enforced by the session store.
func (s *EmailSender) SendOTP(to, name string, code int, validity time.Duration) error {
	body, err := render("otp.html", OTPEmailData{
		Name:    name,
		Code:    code,
		Minutes: int(validity.Minutes()),
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.send(to, "Your One-Time Password (OTP) – Bigwig Media", body)
}

func (s *EmailSender) SendLeadConfirmation(to, name string) error {
	body, err := render("lead_confirmation.html", LeadConfirmationData{
		Name: name,
		Year: time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.send(to, "We've Received Your Query – Bigwig Media Digital", body)
}

func (s *EmailSender) SendLeadNotification(to string, lead *entity.Lead) error {
	body, err := render("lead_notification.html", LeadNotificationData{
		Name:     lead.Name,
		Email:    lead.Email,
		Phone:    lead.Phone,
		Services: strings.Join(lead.Services, ", "),
		Message:  lead.Message,
	})
	if err != nil {
		return err
	}

	return s.send(to, "New Lead Captured - Bigwig Media", body)
}

func (s *EmailSender) SendWelcome(to, unsubscribeLink string) error {
	body, err := render("welcome.html", WelcomeEmailData{
		UnsubscribeLink: unsubscribeLink,
	})
	if err != nil {
		return err
	}

	return s.send(to, "Welcome to Bigwig Media Digital", body)
}

// SendNewsletter ships admin-authored HTML as-is.
func (s *EmailSender) SendNewsletter(to, subject, content string) error {
	return s.send(to, subject, content)
}

func render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	return nil
}
