// Package identity verifies Firebase Authentication ID tokens.
//
// ID tokens are RS256 JWTs signed by Google. Signing keys are published as a
// JWKS document and cached for Config.CacheTTL.
package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	maxSubjectLength     = 128
)

var (
	ErrEmptyToken       = errors.New("empty id token")
	ErrMissingSubject   = errors.New("id token has no sub claim")
	ErrSubjectTooLong   = errors.New("id token sub claim exceeds 128 characters")
	ErrAuthTimeInFuture = errors.New("id token auth_time is in the future")
	ErrUnknownKeyID     = errors.New("signing key not found in JWKS")
)

// Config holds the Firebase verifier configuration.
type Config struct {
	// ProjectID is the Firebase project; it is both the audience and the issuer suffix.
	ProjectID string

	// JWKSURL serves the signing keys.
	JWKSURL string

	// CacheTTL controls how long JWKS keys are cached. Default: 1 hour.
	CacheTTL time.Duration

	// MinRefreshInterval is the minimum gap between JWKS fetches triggered
	// by an unknown kid. Default: 30 seconds.
	MinRefreshInterval time.Duration

	// HTTPClient is used for JWKS fetches. Default: 10s timeout client.
	HTTPClient *http.Client
}

func (c *Config) applyDefaults() {
	if c.CacheTTL == 0 {
		c.CacheTTL = time.Hour
	}
	if c.MinRefreshInterval == 0 {
		c.MinRefreshInterval = 30 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
}

// FirebaseVerifier validates Firebase ID tokens.
type FirebaseVerifier struct {
	projectID string
	issuer    string
	keys      *jwksCache
	now       func() time.Time
}

var _ interfaces.ITokenVerifier = (*FirebaseVerifier)(nil)

func NewFirebaseVerifier(cfg Config) *FirebaseVerifier {
	cfg.applyDefaults()
	return &FirebaseVerifier{
		projectID: cfg.ProjectID,
		issuer:    firebaseIssuerPrefix + cfg.ProjectID,
		keys: &jwksCache{
			keys:       make(map[string]*rsa.PublicKey),
			ttl:        cfg.CacheTTL,
			minRefresh: cfg.MinRefreshInterval,
			jwksURL:    cfg.JWKSURL,
			client:     cfg.HTTPClient,
			now:        time.Now,
		},
		now: time.Now,
	}
}

type firebaseClaims struct {
	AuthTime int64  `json:"auth_time"`
	Email    string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

// VerifyIDToken checks signature, issuer, audience, expiry and subject.
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (entities.Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return entities.Identity{}, ErrEmptyToken
	}

	var claims firebaseClaims
	_, err := jwtlib.ParseWithClaims(idToken, &claims, func(token *jwtlib.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token missing kid header")
		}
		key, err := v.keys.getKey(ctx, kid)
		if err != nil {
			return nil, fmt.Errorf("fetching JWKS key for kid %q: %w", kid, err)
		}
		return key, nil
	},
		jwtlib.WithValidMethods([]string{"RS256"}),
		jwtlib.WithIssuer(v.issuer),
		jwtlib.WithAudience(v.projectID),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithIssuedAt(),
		jwtlib.WithTimeFunc(v.now),
	)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("verify id token: %w", err)
	}

	switch {
	case claims.Subject == "":
		return entities.Identity{}, ErrMissingSubject
	case len(claims.Subject) > maxSubjectLength:
		return entities.Identity{}, ErrSubjectTooLong
	case claims.AuthTime > v.now().Unix():
		return entities.Identity{}, ErrAuthTimeInFuture
	}

	return entities.Identity{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Issuer:   claims.Issuer,
		Audience: claims.Audience,
	}, nil
}

// jwksCache caches RSA public keys fetched from a JWKS endpoint.
type jwksCache struct {
	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey // kid -> public key
	fetchedAt   time.Time
	lastAttempt time.Time // last fetch, successful or not
	ttl         time.Duration
	minRefresh  time.Duration
	jwksURL     string
	client      *http.Client
	now         func() time.Time
}

// getKey returns the key for kid, refreshing the set when it is stale or the kid is unknown.
// Unknown kids trigger at most one fetch per minRefresh interval.
func (c *jwksCache) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, done, err := c.lookup(kid)
	c.mu.RUnlock()
	if done {
		return key, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited.
	if key, done, err := c.lookup(kid); done {
		return key, err
	}

	c.lastAttempt = c.now()
	if err := c.fetch(ctx); err != nil {
		return nil, err
	}

	key, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	}
	return key, nil
}

// lookup answers from the cache when no fetch is needed or allowed.
// Callers must hold at least the read lock.
func (c *jwksCache) lookup(kid string) (*rsa.PublicKey, bool, error) {
	now := c.now()
	key, ok := c.keys[kid]
	if ok && now.Sub(c.fetchedAt) < c.ttl {
		return key, true, nil
	}
	if !c.lastAttempt.IsZero() && now.Sub(c.lastAttempt) < c.minRefresh {
		if ok {
			// Stale, but a refresh was just tried.
			return key, true, nil
		}
		return nil, true, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	}
	return nil, false, nil
}

// fetch must be called with the write lock held.
func (c *jwksCache) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("creating JWKS request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading JWKS response: %w", err)
	}

	var doc jwksDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("parsing JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, jwk := range doc.Keys {
		if jwk.Kty != "RSA" || (jwk.Use != "" && jwk.Use != "sig") {
			continue
		}
		pub, err := parseRSAPublicKey(jwk)
		if err != nil {
			slog.Warn("skipping JWKS key", "kid", jwk.Kid, "error", err)
			continue
		}
		keys[jwk.Kid] = pub
	}

	c.keys = keys
	c.fetchedAt = c.now()
	slog.Debug("JWKS cache refreshed", "keys", len(keys), "url", c.jwksURL)
	return nil
}

type jwksDocument struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func parseRSAPublicKey(jwk jwkKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() {
		return nil, errors.New("RSA exponent too large")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: int(e.Int64())}, nil
}
