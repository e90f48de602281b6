package usecase

// DomainError is a business-rule rejection the caller can act on
// (validation, conflict, not-found). The HTTP layer maps Code to a
// status; Message is safe to echo to the client.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (database, SMTP, broker).
// It always surfaces as a generic 500; the underlying cause is only
// logged server-side.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
