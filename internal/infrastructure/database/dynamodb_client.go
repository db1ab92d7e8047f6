package database

import (
	"context"
	"fmt"

	"oficina_mecanica/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates a DynamoDB client from configuration.
//
// Static credentials are always set: local DynamoDB ignores them but the SDK
// refuses to sign without any. A non-empty endpoint (e.g. http://dynamodb:8000)
// replaces the regional AWS endpoint.
func NewDynamoDBClient(ctx context.Context, c config.DynamoDB) (*dynamodb.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID(), c.SecretAccessKey(), "")

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region()),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("database: load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint := c.Endpoint(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}
