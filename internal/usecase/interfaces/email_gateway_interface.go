package interfaces

import (
	"context"
	"quote_relay/internal/domain/entities"
)

// IEmailGateway abstracts the transactional email provider (e.g. SendGrid).
//
// Implementations return an error both for transport failures and for
// requests the provider rejected.
type IEmailGateway interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}
