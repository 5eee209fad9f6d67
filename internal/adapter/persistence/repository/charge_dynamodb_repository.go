package repository

import (
	"context"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName = "charges"
	chargeRetention         = 24 * time.Hour
)

type chargeItem struct {
	IdempotencyKey string                 `dynamodbav:"idempotency_key"`
	Result         entities.PaymentResult `dynamodbav:"result"`
	CreatedAt      string                 `dynamodbav:"created_at"`
	ExpiresAt      int64                  `dynamodbav:"expires_at"`
}

// ChargeDynamoRepository stores the result of each charge under its
// idempotency key so a retried checkout replays it.
//
// Table requirements:
//   - PK: idempotency_key (string)
//   - TTL: expires_at
type ChargeDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb DynamoDBAPI, table string) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "CHARGES_TABLE", defaultChargesTableName),
		now:       time.Now,
	}
}

func (r *ChargeDynamoRepository) TableName() string { return r.tableName }

func (r *ChargeDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.PaymentResult, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentResult{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentResult{}, false, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentResult{}, false, err
	}
	return it.Result, true, nil
}

// Save keeps the first stored result for a key; a concurrent duplicate loses
// the conditional write and is not an error.
func (r *ChargeDynamoRepository) Save(ctx context.Context, key string, result entities.PaymentResult) error {
	now := r.now().UTC()
	av, err := attributevalue.MarshalMap(chargeItem{
		IdempotencyKey: key,
		Result:         result,
		CreatedAt:      now.Format(time.RFC3339Nano),
		ExpiresAt:      now.Add(chargeRetention).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#k)"),
		ExpressionAttributeNames: map[string]string{
			"#k": "idempotency_key",
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}
