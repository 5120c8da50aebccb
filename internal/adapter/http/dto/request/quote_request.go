package request

import "strings"

// SendQuoteEmailRequest is the body of POST /sendQuoteEmail.
type SendQuoteEmailRequest struct {
	QuoteID     string `json:"quoteId" example:"Q1"`
	ClientEmail string `json:"clientEmail" example:"client@example.com"`
}

func (r SendQuoteEmailRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}

func (r SendQuoteEmailRequest) ResolveClientEmail() string {
	return strings.TrimSpace(r.ClientEmail)
}

// HasRequiredFields reports whether both quoteId and clientEmail are present.
func (r SendQuoteEmailRequest) HasRequiredFields() bool {
	return r.ResolveQuoteID() != "" && r.ResolveClientEmail() != ""
}

// QuoteViewedRequest is the body of POST /quoteViewed.
type QuoteViewedRequest struct {
	QuoteID string `json:"quoteId" example:"Q1"`
}

func (r QuoteViewedRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}
