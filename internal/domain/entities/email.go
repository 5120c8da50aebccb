package entities

// EmailMessage is a provider-agnostic transactional email.
type EmailMessage struct {
	From     string
	FromName string
	To       string
	Subject  string
	TextBody string
	HTMLBody string
	// QuoteID is carried for logging and provider custom args.
	QuoteID string
}
