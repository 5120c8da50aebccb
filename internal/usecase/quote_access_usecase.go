package usecase

import (
	"context"
	"errors"
	"log/slog"
	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"
	"strings"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrQuoteForbidden  = errors.New("subject is not the quote creator")
	ErrInvalidSubject  = errors.New("invalid subject")
	ErrRepoUnavailable = errors.New("quote repository not configured")
)

// IQuoteAccessUseCase guards quote sends: only the quote creator may send it.

type IQuoteAccessUseCase interface {
	AuthorizeSend(ctx context.Context, quoteID, subject string) (entities.Quote, error)
}

type QuoteAccessUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteAccessUseCase = (*QuoteAccessUseCase)(nil)

func NewQuoteAccessUseCase(repo interfaces.IQuoteRepository) *QuoteAccessUseCase {
	return &QuoteAccessUseCase{repo: repo}
}

func (u *QuoteAccessUseCase) AuthorizeSend(ctx context.Context, quoteID, subject string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return entities.Quote{}, ErrInvalidSubject
	}
	if u.repo == nil {
		return entities.Quote{}, ErrRepoUnavailable
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		slog.ErrorContext(ctx, "failed loading quote", "quote_id", quoteID, "error", err)
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	slog.DebugContext(ctx, "checking quote ownership", "quote_id", quoteID, "uid", subject, "creator", q.CreatorID())
	if !q.IsOwnedBy(subject) {
		slog.WarnContext(ctx, "unauthorized send attempt",
			"quote_id", quoteID,
			"uid", subject,
			"creator", q.CreatorID(),
		)
		return entities.Quote{}, ErrQuoteForbidden
	}
	return q, nil
}
