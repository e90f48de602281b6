package usecase

type SendOTPInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Message  string   `json:"message"`
	Services []string `json:"services"`
}

type SendOTPOutput struct {
	Message string `json:"message"`
}

type VerifyOTPInput struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPOutput struct {
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
	// EmailsSent is false when the lead was persisted but the
	// confirmation/notification emails could not be delivered.
	EmailsSent bool `json:"emails_sent"`
}

type DailyLeadCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type SendNewsletterInput struct {
	Title        string   `json:"title"`
	Subject      string   `json:"subject"`
	Content      string   `json:"content"`
	SendType     string   `json:"sendType"`
	ManualEmails []string `json:"manualEmails"`
}

type SendNewsletterOutput struct {
	NewsletterID   string `json:"newsletterId"`
	RecipientCount int    `json:"recipientCount"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

type SubscribeInput struct {
	Email string `json:"email"`
}

type SubscribeOutput struct {
	Message string `json:"message"`
}
