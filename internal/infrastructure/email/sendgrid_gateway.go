// Package email delivers quote emails through SendGrid.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const quoteCategory = "quote"

var ErrMissingAPIKey = errors.New("sendgrid api key is required")

// mailSender is the subset of *sendgrid.Client the gateway uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// ProviderError is returned when SendGrid answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("sendgrid: unexpected status %d: %.200s", e.StatusCode, e.Body)
}

type SendGridGateway struct {
	client mailSender
}

var _ interfaces.IEmailGateway = (*SendGridGateway)(nil)

func NewSendGridGateway(apiKey string) (*SendGridGateway, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &SendGridGateway{client: sendgrid.NewSendClient(apiKey)}, nil
}

func (g *SendGridGateway) Send(ctx context.Context, msg entities.EmailMessage) error {
	from := mail.NewEmail(msg.FromName, msg.From)
	to := mail.NewEmail("", msg.To)

	m := mail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, msg.HTMLBody)
	m.AddCategories(quoteCategory)
	if msg.QuoteID != "" && len(m.Personalizations) > 0 {
		m.Personalizations[0].SetCustomArg("quoteId", msg.QuoteID)
	}

	resp, err := g.client.SendWithContext(ctx, m)
	if err != nil {
		slog.ErrorContext(ctx, "sendgrid request failed", "quoteId", msg.QuoteID, "error", err)
		return fmt.Errorf("sendgrid: send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.ErrorContext(ctx, "sendgrid rejected message",
			"quoteId", msg.QuoteID,
			"status", resp.StatusCode,
			"body", resp.Body,
		)
		return &ProviderError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	slog.InfoContext(ctx, "quote email accepted by sendgrid", "quoteId", msg.QuoteID, "status", resp.StatusCode)
	return nil
}
