package repository

import (
	"context"
	"time"

	"checkout_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookEventsTableName = "webhook_events"
	webhookEventRetention         = 30 * 24 * time.Hour
)

// WebhookEventDynamoRepository claims (payment id, status) pairs with a
// conditional write.
//
// Table requirements:
//   - PK: event_key (string, "<payment_id>#<status>")
//   - TTL: expires_at
type WebhookEventDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb DynamoDBAPI, table string) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
		now:       time.Now,
	}
}

func (r *WebhookEventDynamoRepository) TableName() string { return r.tableName }

func eventKey(paymentID, status string) string {
	return paymentID + "#" + status
}

func (r *WebhookEventDynamoRepository) Claim(ctx context.Context, paymentID, status string) (bool, error) {
	now := r.now().UTC()
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"event_key":   &types.AttributeValueMemberS{Value: eventKey(paymentID, status)},
			"payment_id":  &types.AttributeValueMemberS{Value: paymentID},
			"status":      &types.AttributeValueMemberS{Value: status},
			"received_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
			"expires_at":  &types.AttributeValueMemberN{Value: ttlAttr(now.Add(webhookEventRetention))},
		},
		ConditionExpression: aws.String("attribute_not_exists(#k)"),
		ExpressionAttributeNames: map[string]string{
			"#k": "event_key",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WebhookEventDynamoRepository) Release(ctx context.Context, paymentID, status string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_key": &types.AttributeValueMemberS{Value: eventKey(paymentID, status)},
		},
	})
	return err
}
