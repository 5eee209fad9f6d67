package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NewDynamoDBClient creates a DynamoDB client from the environment.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (static credentials; when unset
//     the default AWS credential chain is used)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func NewDynamoDBClient(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
	}

	key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if key != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, os.Getenv("AWS_SESSION_TOKEN")),
		))
	} else if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableSpec describes a single-key table for local bootstrap.
type TableSpec struct {
	Name         string
	PartitionKey string
	TTLAttribute string
}

// EnsureTables creates missing tables (pay-per-request) and enables TTL where
// asked. Meant for local DynamoDB; production tables come from infrastructure
// code.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(spec.Name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(spec.PartitionKey), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.PartitionKey), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			continue
		case err != nil:
			return err
		}
		log.Printf("[database] created table %s (pk=%s)", spec.Name, spec.PartitionKey)

		if spec.TTLAttribute == "" {
			continue
		}
		_, err = ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
			TableName: aws.String(spec.Name),
			TimeToLiveSpecification: &types.TimeToLiveSpecification{
				AttributeName: aws.String(spec.TTLAttribute),
				Enabled:       aws.Bool(true),
			},
		})
		if err != nil {
			log.Printf("[database] ttl not enabled table=%s err=%v", spec.Name, err)
		}
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
