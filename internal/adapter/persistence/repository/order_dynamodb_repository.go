package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"

	// Mirrors entities.OrderStatus.Replaces.
	orderUpdateCondition = "attribute_not_exists(status_rank) OR status_rank < :rank OR (payment_id <> :pid AND status_rank < :paid_rank)"
)

// OrderDynamoRepository keeps the payment state of storefront orders. Each
// update is conditional on the stored status rank so notifications arriving
// late or twice never move an order backwards. An update from a different
// payment (a retry on the same order) may overwrite a failed or pending
// attempt but never a paid order.
//
// Table requirements:
//   - PK: order_id (string)
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, table string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) TableName() string { return r.tableName }

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, u entities.OrderUpdate) (bool, error) {
	sets := []string{
		"#status = :status",
		"status_rank = :rank",
		"payment_id = :pid",
		"amount = :amount",
		"payment_method = :method",
		"updated_at = :updated",
	}
	values := map[string]types.AttributeValue{
		":status":    &types.AttributeValueMemberS{Value: string(u.Status)},
		":rank":      &types.AttributeValueMemberN{Value: strconv.Itoa(u.Status.Rank())},
		":paid_rank": &types.AttributeValueMemberN{Value: strconv.Itoa(entities.OrderStatusPaid.Rank())},
		":pid":       &types.AttributeValueMemberS{Value: u.PaymentID},
		":amount":    &types.AttributeValueMemberN{Value: strconv.FormatFloat(u.Amount, 'f', -1, 64)},
		":method":    &types.AttributeValueMemberS{Value: u.PaymentMethod},
		":updated":   &types.AttributeValueMemberS{Value: u.UpdatedAt.UTC().Format(time.RFC3339Nano)},
	}
	if u.PaidAt != nil {
		sets = append(sets, "paid_at = :paid")
		values[":paid"] = &types.AttributeValueMemberS{Value: u.PaidAt.UTC().Format(time.RFC3339Nano)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: u.OrderID},
		},
		UpdateExpression:    aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression: aws.String(orderUpdateCondition),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
