package repository

import (
	"context"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditTableName = "payment_audit"

type auditItem struct {
	ID                string  `dynamodbav:"id"`
	Timestamp         string  `dynamodbav:"timestamp"`
	Event             string  `dynamodbav:"event"`
	PaymentID         string  `dynamodbav:"payment_id"`
	Status            string  `dynamodbav:"status"`
	ExternalReference string  `dynamodbav:"external_reference,omitempty"`
	Amount            float64 `dynamodbav:"amount"`
	PaymentMethod     string  `dynamodbav:"payment_method,omitempty"`
	Duplicate         bool    `dynamodbav:"duplicate"`
}

// AuditDynamoRepository appends webhook audit entries.
//
// Table requirements:
//   - PK: id (string)
type AuditDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb DynamoDBAPI, table string) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) TableName() string { return r.tableName }

func (r *AuditDynamoRepository) Record(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:                e.ID,
		Timestamp:         e.Timestamp.UTC().Format(time.RFC3339Nano),
		Event:             e.Event,
		PaymentID:         e.PaymentID,
		Status:            e.Status,
		ExternalReference: e.ExternalReference,
		Amount:            e.Amount,
		PaymentMethod:     e.PaymentMethod,
		Duplicate:         e.Duplicate,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
