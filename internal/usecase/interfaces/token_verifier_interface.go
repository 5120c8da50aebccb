package interfaces

import (
	"context"
	"quote_relay/internal/domain/entities"
)

// ITokenVerifier verifies identity-provider ID tokens (Firebase Authentication).
type ITokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (entities.Identity, error)
}
