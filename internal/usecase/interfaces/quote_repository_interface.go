package interfaces

import (
	"context"
	"quote_relay/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The relay never creates or deletes quotes. It must be able to:
//   - read a quote by id (zero Quote when absent)
//   - mark a quote as viewed, stamping viewedAt with the server time

type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	MarkViewed(ctx context.Context, id string) (entities.Quote, error)
}
