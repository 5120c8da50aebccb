package database

import (
	"context"
	"fmt"
	"log/slog"

	appconfig "quote_relay/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the process-wide DynamoDB client.
//
// DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000) redirects the client
// to DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	slog.Info("dynamodb client initialized", "region", cfg.Region, "endpoint", cfg.Endpoint, "table", cfg.QuotesTable)
	return client, nil
}

// localCredential satisfies the SDK signer for DynamoDB Local, which ignores credentials.
const localCredential = "local"

// NewAWSConfig prefers explicit keys, then placeholder keys for a local
// endpoint, then the default credential chain (env, shared config, IAM role).
func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	case cfg.Endpoint != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localCredential, localCredential, "")))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}
