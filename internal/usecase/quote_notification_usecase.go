package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"
	"strings"
)

// Sender identity is fixed; the address must stay verified with the email provider.
const (
	QuoteSenderAddress = "walter@valdicass.com"
	QuoteEmailSubject  = "Your Valdicass Quote is Ready"

	trackOpenPath = "/trackOpen/"
)

var (
	ErrMissingSendFields   = errors.New("missing quoteId or clientEmail")
	ErrEmailDelivery       = errors.New("email delivery failed")
	ErrGatewayNotAvailable = errors.New("email gateway not configured")
)

// IQuoteNotificationUseCase sends quote emails and records quote views.
//
// Requested behavior:
//   - SendQuoteEmail: owner-only send of the quote total, with an open-tracking pixel.
//   - RecordView: mark a quote viewed (explicit call or pixel fetch), refreshing viewedAt.

type IQuoteNotificationUseCase interface {
	SendQuoteEmail(ctx context.Context, subject, quoteID, clientEmail string) error
	RecordView(ctx context.Context, quoteID string, source entities.ViewSource) (entities.Quote, error)
}

type QuoteNotificationUseCase struct {
	access          IQuoteAccessUseCase
	repo            interfaces.IQuoteRepository
	gateway         interfaces.IEmailGateway
	trackingBaseURL string
}

var _ IQuoteNotificationUseCase = (*QuoteNotificationUseCase)(nil)

func NewQuoteNotificationUseCase(access IQuoteAccessUseCase, repo interfaces.IQuoteRepository, gateway interfaces.IEmailGateway, trackingBaseURL string) *QuoteNotificationUseCase {
	return &QuoteNotificationUseCase{
		access:          access,
		repo:            repo,
		gateway:         gateway,
		trackingBaseURL: strings.TrimRight(trackingBaseURL, "/"),
	}
}

func (u *QuoteNotificationUseCase) SendQuoteEmail(ctx context.Context, subject, quoteID, clientEmail string) error {
	slog.InfoContext(ctx, "send quote email requested", "quote_id", quoteID, "client_email", clientEmail)
	quoteID = strings.TrimSpace(quoteID)
	clientEmail = strings.TrimSpace(clientEmail)
	if quoteID == "" || clientEmail == "" {
		return ErrMissingSendFields
	}
	if u.access == nil {
		return errors.New("quote access guard not configured")
	}
	if u.gateway == nil {
		return ErrGatewayNotAvailable
	}

	q, err := u.access.AuthorizeSend(ctx, quoteID, subject)
	if err != nil {
		return err
	}

	msg := u.buildQuoteEmail(q, quoteID, clientEmail)
	if err := u.gateway.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "quote email delivery failed", "quote_id", quoteID, "client_email", clientEmail, "error", err)
		return fmt.Errorf("%w: %w", ErrEmailDelivery, err)
	}

	slog.InfoContext(ctx, "quote email sent", "quote_id", quoteID, "client_email", clientEmail)
	return nil
}

func (u *QuoteNotificationUseCase) RecordView(ctx context.Context, quoteID string, source entities.ViewSource) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.repo == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}

	updated, err := u.repo.MarkViewed(ctx, quoteID)
	if err != nil {
		slog.ErrorContext(ctx, "failed marking quote viewed", "quote_id", quoteID, "source", source, "error", err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	slog.InfoContext(ctx, "quote viewed", "quote_id", quoteID, "source", source, "viewed_at", updated.ViewedAt)
	return updated, nil
}

// TrackingPixelURL is the open-tracking URL embedded in quote emails.
func (u *QuoteNotificationUseCase) TrackingPixelURL(quoteID string) string {
	return u.trackingBaseURL + trackOpenPath + url.PathEscape(quoteID)
}

func (u *QuoteNotificationUseCase) buildQuoteEmail(q entities.Quote, quoteID, clientEmail string) entities.EmailMessage {
	total := q.FormattedTotal()
	return entities.EmailMessage{
		From:     QuoteSenderAddress,
		To:       clientEmail,
		Subject:  QuoteEmailSubject,
		TextBody: fmt.Sprintf("Quote Total: $%s", total),
		HTMLBody: fmt.Sprintf(`
  <strong>Your quote total is $%s</strong><br />
  <img src="%s" alt="" width="1" height="1" style="display:none;" />
`, html.EscapeString(total), html.EscapeString(u.TrackingPixelURL(quoteID))),
		QuoteID: quoteID,
	}
}
