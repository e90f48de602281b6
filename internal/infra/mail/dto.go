package mail

type OTPEmailData struct {
	Name    string
	Code    int
	Minutes int
	Year    int
}

type LeadConfirmationData struct {
	Name string
	Year int
}

type LeadNotificationData struct {
	Name     string
	Email    string
	Phone    string
	Services string
	Message  string
}

type WelcomeEmailData struct {
	UnsubscribeLink string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
