package usecase

import (
	"context"
	"quote_relay/internal/domain/entities"
)

// identityKey is a private type for the identity context key.
type identityKey struct{}

// WithIdentity stores the verified caller in the context.
func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the verified caller, if any.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entities.Identity)
	if !ok || id.Subject == "" {
		return entities.Identity{}, false
	}
	return id, true
}
