package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table set understanding the condition
// expressions the repositories issue.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func keyString(key map[string]types.AttributeValue) string {
	parts := make([]string, 0, len(key))
	for k, v := range key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			parts = append(parts, k+"="+s.Value)
		}
	}
	return strings.Join(parts, ",")
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyString(in.Key)]}, nil
}

// PutItem assumes the first attribute named in ExpressionAttributeNames is the
// partition key.
func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)

	var pk string
	for _, name := range in.ExpressionAttributeNames {
		pk = name
	}
	key := keyString(map[string]types.AttributeValue{pk: in.Item[pk]})
	t := f.table(aws.ToString(in.TableName))
	if _, exists := t[key]; exists && strings.HasPrefix(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	t[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.updates = append(f.updates, in)

	t := f.table(aws.ToString(in.TableName))
	key := keyString(in.Key)
	item, exists := t[key]
	if exists {
		if !orderUpdateAllowed(item, in.ExpressionAttributeValues) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	} else {
		item = map[string]types.AttributeValue{}
		for k, v := range in.Key {
			item[k] = v
		}
	}

	assignments := strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ", ")
	for _, a := range assignments {
		lhs, rhs, _ := strings.Cut(a, " = ")
		if name, ok := in.ExpressionAttributeNames[lhs]; ok {
			lhs = name
		}
		item[lhs] = in.ExpressionAttributeValues[rhs]
	}
	t[key] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.table(aws.ToString(in.TableName)), keyString(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// orderUpdateAllowed evaluates orderUpdateCondition against a stored item.
func orderUpdateAllowed(item map[string]types.AttributeValue, values map[string]types.AttributeValue) bool {
	stored, ok := item["status_rank"]
	if !ok {
		return true
	}
	rank := numberValue(stored)
	if rank < numberValue(values[":rank"]) {
		return true
	}
	pid, _ := item["payment_id"].(*types.AttributeValueMemberS)
	newPID, _ := values[":pid"].(*types.AttributeValueMemberS)
	differentPayment := pid == nil || newPID == nil || pid.Value != newPID.Value
	return differentPayment && rank < numberValue(values[":paid_rank"])
}

func numberValue(av types.AttributeValue) int {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	v, _ := strconv.Atoi(n.Value)
	return v
}

var errThrottled = errors.New("ProvisionedThroughputExceededException")
