package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"
	"strings"
)

const bearerPrefix = "Bearer "

var (
	ErrMissingToken = errors.New("no bearer token provided")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// IAuthUseCase validates bearer credentials against the identity provider.
//
// A missing credential and a rejected credential are distinct outcomes:
// callers map ErrMissingToken to 401 and ErrInvalidToken to 403.
type IAuthUseCase interface {
	Authenticate(ctx context.Context, authorizationHeader string) (entities.Identity, error)
}

type AuthUseCase struct {
	verifier interfaces.ITokenVerifier
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(verifier interfaces.ITokenVerifier) *AuthUseCase {
	return &AuthUseCase{verifier: verifier}
}

func (u *AuthUseCase) Authenticate(ctx context.Context, authorizationHeader string) (entities.Identity, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return entities.Identity{}, ErrMissingToken
	}
	if u.verifier == nil {
		return entities.Identity{}, errors.New("token verifier not configured")
	}

	idToken := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	identity, err := u.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		slog.WarnContext(ctx, "invalid token", "error", err)
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(identity.Subject) == "" {
		slog.WarnContext(ctx, "invalid token", "error", "verified token has empty subject")
		return entities.Identity{}, ErrInvalidToken
	}

	slog.DebugContext(ctx, "token verified", "uid", identity.Subject)
	return identity, nil
}
