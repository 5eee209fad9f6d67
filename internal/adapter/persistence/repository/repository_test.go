package repository

import (
	"context"
	"testing"
	"time"

	"checkout_relay/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewChargeDynamoRepository(ddb, "charges-test")
	ctx := context.Background()

	_, found, err := repo.GetByIdempotencyKey(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found)

	first := entities.PaymentResult{Success: true, PaymentID: "100", Status: "approved", PaymentMethod: "credit_card", ExternalReference: "ORD-1", TransactionAmount: 10.5, Installments: 2, CardLastFour: "4242", StatusDetail: "accredited"}
	require.NoError(t, repo.Save(ctx, "k1", first))

	// A racing second writer keeps the first result.
	require.NoError(t, repo.Save(ctx, "k1", entities.PaymentResult{PaymentID: "200"}))

	got, found, err := repo.GetByIdempotencyKey(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first, got)

	require.Len(t, ddb.puts, 2)
	exp, ok := ddb.puts[0].Item["expires_at"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.NotEmpty(t, exp.Value)

	ddb.err = errThrottled
	_, _, err = repo.GetByIdempotencyKey(ctx, "k1")
	assert.ErrorIs(t, err, errThrottled)
	assert.ErrorIs(t, repo.Save(ctx, "k2", first), errThrottled)
}

func TestWebhookEventDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewWebhookEventDynamoRepository(ddb, "events-test")
	ctx := context.Background()

	first, err := repo.Claim(ctx, "55", "approved")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.Claim(ctx, "55", "approved")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := repo.Claim(ctx, "55", "refunded")
	require.NoError(t, err)
	assert.True(t, other, "a new status for the same payment is a new event")

	require.NoError(t, repo.Release(ctx, "55", "approved"))
	retried, err := repo.Claim(ctx, "55", "approved")
	require.NoError(t, err)
	assert.True(t, retried)

	ddb.err = errThrottled
	_, err = repo.Claim(ctx, "56", "approved")
	assert.ErrorIs(t, err, errThrottled)
}

func TestOrderDynamoRepository_Monotonic(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewOrderDynamoRepository(ddb, "orders-test")
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	update := func(status entities.OrderStatus) entities.OrderUpdate {
		u := entities.OrderUpdate{OrderID: "ORD-1", PaymentID: "9", Status: status, Amount: 99.9, PaymentMethod: "pix", UpdatedAt: now}
		if status == entities.OrderStatusPaid {
			u.PaidAt = &now
		}
		return u
	}

	applied, err := repo.UpdateStatus(ctx, update(entities.OrderStatusAwaitingPayment))
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.UpdateStatus(ctx, update(entities.OrderStatusPaid))
	require.NoError(t, err)
	assert.True(t, applied)

	// Late pending and replayed approval are ignored.
	applied, err = repo.UpdateStatus(ctx, update(entities.OrderStatusAwaitingPayment))
	require.NoError(t, err)
	assert.False(t, applied)
	applied, err = repo.UpdateStatus(ctx, update(entities.OrderStatusPaid))
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = repo.UpdateStatus(ctx, update(entities.OrderStatusRefunded))
	require.NoError(t, err)
	assert.True(t, applied)

	item := ddb.tables["orders-test"]["order_id=ORD-1"]
	assert.Equal(t, "refunded", item["status"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "4", item["status_rank"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, "99.9", item["amount"].(*types.AttributeValueMemberN).Value)
	assert.Contains(t, item, "paid_at")

	paidUpdate := ddb.updates[1]
	assert.Contains(t, *paidUpdate.UpdateExpression, "paid_at = :paid")
	assert.Equal(t, "attribute_not_exists(status_rank) OR status_rank < :rank OR (payment_id <> :pid AND status_rank < :paid_rank)", *paidUpdate.ConditionExpression)
	assert.Equal(t, "3", paidUpdate.ExpressionAttributeValues[":paid_rank"].(*types.AttributeValueMemberN).Value)
}

func TestOrderDynamoRepository_RetryAfterFailedAttempt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	update := func(paymentID string, status entities.OrderStatus) entities.OrderUpdate {
		return entities.OrderUpdate{OrderID: "ORD-7", PaymentID: paymentID, Status: status, Amount: 49.9, PaymentMethod: "visa", UpdatedAt: now}
	}

	t.Run("declined card then approved card", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewOrderDynamoRepository(ddb, "orders-test")

		applied, err := repo.UpdateStatus(ctx, update("1", entities.OrderStatusRejected))
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.UpdateStatus(ctx, update("2", entities.OrderStatusPaid))
		require.NoError(t, err)
		assert.True(t, applied)

		// The first attempt's rejection arriving again cannot undo the payment.
		applied, err = repo.UpdateStatus(ctx, update("1", entities.OrderStatusRejected))
		require.NoError(t, err)
		assert.False(t, applied)

		item := ddb.tables["orders-test"]["order_id=ORD-7"]
		assert.Equal(t, "paid", item["status"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "2", item["payment_id"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("expired pix then card", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewOrderDynamoRepository(ddb, "orders-test")

		for _, u := range []entities.OrderUpdate{
			update("10", entities.OrderStatusAwaitingPayment),
			update("10", entities.OrderStatusCancelled),
			update("11", entities.OrderStatusPaid),
		} {
			applied, err := repo.UpdateStatus(ctx, u)
			require.NoError(t, err)
			assert.True(t, applied, "%s from payment %s", u.Status, u.PaymentID)
		}
	})

	t.Run("same payment never moves back", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewOrderDynamoRepository(ddb, "orders-test")

		applied, err := repo.UpdateStatus(ctx, update("3", entities.OrderStatusRejected))
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.UpdateStatus(ctx, update("3", entities.OrderStatusAwaitingPayment))
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestAuditDynamoRepository(t *testing.T) {
	t.Setenv("AUDIT_TABLE", "")
	ddb := newFakeDynamo()
	repo := NewAuditDynamoRepository(ddb, "")
	ctx := context.Background()

	err := repo.Record(ctx, entities.AuditEntry{
		ID: "a-1", Timestamp: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), Event: "webhook_received",
		PaymentID: "9", Status: "approved", ExternalReference: "ORD-1", Amount: 12, PaymentMethod: "pix", Duplicate: true,
	})
	require.NoError(t, err)

	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "payment_audit", *ddb.puts[0].TableName)
	item := ddb.puts[0].Item
	assert.Equal(t, "2026-10-16T12:00:00Z", item["timestamp"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, true, item["duplicate"].(*types.AttributeValueMemberBOOL).Value)
}
