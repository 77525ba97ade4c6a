package table

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	DynamoAPI

	query   func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	getItem func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func tableAttrs(number, capacity string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"locationId":      &types.AttributeValueMemberS{Value: "loc-1"},
		"tableNumber":     &types.AttributeValueMemberS{Value: number},
		"locationAddress": &types.AttributeValueMemberS{Value: "48 Rustaveli Avenue"},
		"capacity":        &types.AttributeValueMemberN{Value: capacity},
	}
}

func TestRepository_GetByLocation(t *testing.T) {
	db := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.Equal(t, "Tables", aws.ToString(in.TableName))
		assert.Equal(t, "#capacity >= :guests", aws.ToString(in.FilterExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, in.ExpressionAttributeValues[":guests"])
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			tableAttrs("2", "4"),
			tableAttrs("1", "6"),
		}}, nil
	}}

	tables, err := NewRepository(db, "Tables").GetByLocation(context.Background(), "loc-1", 3)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "2", tables[0].TableNumber)
	assert.Equal(t, 4, tables[0].Capacity)
	assert.Equal(t, "1", tables[1].TableNumber)
	assert.Equal(t, "48 Rustaveli Avenue", tables[1].LocationAddress)
}

func TestRepository_GetByLocation_Error(t *testing.T) {
	db := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return nil, errors.New("throttled")
	}}

	_, err := NewRepository(db, "Tables").GetByLocation(context.Background(), "loc-1", 1)
	assert.ErrorIs(t, err, ErrExecRequest)
}

func TestRepository_GetByNumber_NotFound(t *testing.T) {
	db := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		assert.Equal(t, &types.AttributeValueMemberS{Value: "9"}, in.Key["tableNumber"])
		return &dynamodb.GetItemOutput{}, nil
	}}

	_, err := NewRepository(db, "Tables").GetByNumber(context.Background(), "loc-1", "9")
	assert.ErrorIs(t, err, ErrTableNotFound)
}
