package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bigwigmedia/bigwig-backend/internal/infra/otp"
	"github.com/bigwigmedia/bigwig-backend/internal/usecase"
)

func newLeadHandler(leadRepo *MockLeadRepositoryHandler, mailer *MockEmailServiceHandler, sessions *otp.Store) *LeadHandler {
	sendUC := usecase.NewSendOTPUseCase(leadRepo, sessions, mailer, 10*time.Minute, usecase.ResendPolicyReplace)
	verifyUC := usecase.NewVerifyOTPUseCase(leadRepo, sessions, mailer, "staff@bigwigmedia.in")
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)
	return NewLeadHandler(sendUC, verifyUC, statsUC, leadRepo)
}

func TestSendOTPHandlerSuccess(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	mailer := new(MockEmailServiceHandler)
	sessions := otp.NewStore(10 * time.Minute)

	leadRepo.On("ExistsByEmail", mock.Anything, "rohit@example.com").Return(false, nil)
	mailer.On("SendOTP", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(leadRepo, mailer, sessions)

	body, _ := json.Marshal(usecase.SendOTPInput{
		Name:     "Rohit Sharma",
		Email:    "rohit@example.com",
		Phone:    "+91 98765 43210",
		Services: []string{"SEO"},
	})
	req := httptest.NewRequest("POST", "/leads/send-otp", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.SendOTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.SendOTPOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "OTP sent to email.", response.Message)
}

func TestSendOTPHandlerDuplicateLead(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	mailer := new(MockEmailServiceHandler)
	sessions := otp.NewStore(10 * time.Minute)

	leadRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	handler := newLeadHandler(leadRepo, mailer, sessions)

	body, _ := json.Marshal(usecase.SendOTPInput{
		Name:  "Rohit",
		Email: "taken@example.com",
		Phone: "123",
	})
	req := httptest.NewRequest("POST", "/leads/send-otp", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.SendOTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestVerifyOTPHandlerRoundTrip(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	mailer := new(MockEmailServiceHandler)
	sessions := otp.NewStore(10 * time.Minute)

	leadRepo.On("ExistsByEmail", mock.Anything, "rohit@example.com").Return(false, nil)

	var code int
	mailer.On("SendOTP", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { code = args.Int(2) }).
		Return(nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendLeadConfirmation", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendLeadNotification", mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(leadRepo, mailer, sessions)

	sendBody, _ := json.Marshal(usecase.SendOTPInput{
		Name:  "Rohit",
		Email: "rohit@example.com",
		Phone: "123",
	})
	w := httptest.NewRecorder()
	handler.SendOTP(w, httptest.NewRequest("POST", "/leads/send-otp", bytes.NewReader(sendBody)))
	assert.Equal(t, http.StatusOK, w.Code)

	verifyBody, _ := json.Marshal(usecase.VerifyOTPInput{
		Email: "rohit@example.com",
		OTP:   strconv.Itoa(code),
	})
	w = httptest.NewRecorder()
	handler.VerifyOTP(w, httptest.NewRequest("POST", "/leads/verify-otp", bytes.NewReader(verifyBody)))

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.VerifyOTPOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.EmailsSent)
	assert.NotEmpty(t, response.LeadID)
}

func TestVerifyOTPHandlerNoSession(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	mailer := new(MockEmailServiceHandler)
	sessions := otp.NewStore(10 * time.Minute)

	handler := newLeadHandler(leadRepo, mailer, sessions)

	body, _ := json.Marshal(usecase.VerifyOTPInput{Email: "nobody@example.com", OTP: "123456"})
	w := httptest.NewRecorder()
	handler.VerifyOTP(w, httptest.NewRequest("POST", "/leads/verify-otp", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "OTP expired or not found")
}

func TestLeadsLastTenDaysHandler(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	mailer := new(MockEmailServiceHandler)
	sessions := otp.NewStore(10 * time.Minute)

	leadRepo.On("CountByDaySince", mock.Anything, mock.Anything).Return(map[string]int{}, nil)

	handler := newLeadHandler(leadRepo, mailer, sessions)

	w := httptest.NewRecorder()
	handler.LeadsLastTenDays(w, httptest.NewRequest("GET", "/leads/last-10-days", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var stats []usecase.DailyLeadCount
	json.NewDecoder(w.Body).Decode(&stats)
	assert.Len(t, stats, 10)
	for _, day := range stats {
		assert.Equal(t, 0, day.Count)
	}
}
