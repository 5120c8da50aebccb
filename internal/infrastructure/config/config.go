// Package config loads the relay configuration from environment variables.
// A .env file is loaded beforehand by cmd/api through godotenv/autoload.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultFirebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
	DefaultPublicBaseURL   = "http://localhost:5001"
)

var (
	ErrMissingSendGridAPIKey    = errors.New("missing SENDGRID_API_KEY")
	ErrMissingFirebaseProjectID = errors.New("missing FIREBASE_PROJECT_ID (or project_id in FIREBASE_CREDENTIALS_FILE)")
)

// Config is the fully-parsed relay configuration.
type Config struct {
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:5001"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	// CORSAllowedOrigins is a comma separated list; "*" allows any origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SendGrid SendGridConfig
	Firebase FirebaseConfig
	DynamoDB DynamoDBConfig
}

type SendGridConfig struct {
	APIKey string `env:"SENDGRID_API_KEY"`
}

// FirebaseConfig points token verification at a Firebase project.
type FirebaseConfig struct {
	ProjectID       string        `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string        `env:"FIREBASE_CREDENTIALS_FILE" envDefault:"serviceAccountKey.json"`
	JWKSURL         string        `env:"FIREBASE_JWKS_URL" envDefault:"https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"`
	JWKSCacheTTL    time.Duration `env:"FIREBASE_JWKS_CACHE_TTL" envDefault:"1h"`
	JWKSMinRefresh  time.Duration `env:"FIREBASE_JWKS_MIN_REFRESH" envDefault:"30s"`
}

// DynamoDBConfig selects the table and credentials. Without explicit keys the
// AWS default credential chain applies, unless Endpoint targets DynamoDB Local.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable     string `env:"QUOTES_TABLE" envDefault:"quotes"`
}

// Load parses the environment, resolves the Firebase project and validates
// the result. Callers treat any error as fatal.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.SendGrid.APIKey = strings.TrimSpace(cfg.SendGrid.APIKey)
	cfg.Firebase.ProjectID = strings.TrimSpace(cfg.Firebase.ProjectID)

	if cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsFile != "" {
		projectID, err := projectIDFromCredentials(cfg.Firebase.CredentialsFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg.Firebase.ProjectID = projectID
	}

	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	if c.SendGrid.APIKey == "" {
		errs = append(errs, ErrMissingSendGridAPIKey)
	}
	if c.Firebase.ProjectID == "" {
		errs = append(errs, ErrMissingFirebaseProjectID)
	}
	if c.Firebase.JWKSURL == "" {
		errs = append(errs, errors.New("missing FIREBASE_JWKS_URL"))
	}
	return errors.Join(errs...)
}

// serviceAccount is the subset of a Google service account key we need.
type serviceAccount struct {
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
}

func projectIDFromCredentials(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read firebase credentials: %w", err)
	}
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return "", fmt.Errorf("parse firebase credentials %s: %w", path, err)
	}
	return strings.TrimSpace(sa.ProjectID), nil
}
