package dynmetrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// API подмножество методов DynamoDB-клиента, которое используют репозитории.
// Реализуется *dynamodb.Client и *Client (обертка с метриками), в тестах - фейками.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Observer получатель метрик вызовов хранилища
type Observer interface {
	ObserveStorageCall(operation, table string, err error, duration time.Duration)
}

var (
	_ API = (*dynamodb.Client)(nil)
	_ API = (*Client)(nil)
)

// Client обертка над DynamoDB-клиентом, собирающая метрики по каждому вызову
type Client struct {
	next     API
	observer Observer
}

// Wrap оборачивает клиента сбором метрик
func Wrap(next API, observer Observer) *Client {
	return &Client{next: next, observer: observer}
}

func (c *Client) observe(operation string, table *string, start time.Time, err error) {
	c.observer.ObserveStorageCall(operation, aws.ToString(table), err, time.Since(start))
}

// GetItem см. dynamodb.Client.GetItem
func (c *Client) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	start := time.Now()
	out, err := c.next.GetItem(ctx, params, optFns...)
	c.observe("GetItem", params.TableName, start, err)
	return out, err
}

// PutItem см. dynamodb.Client.PutItem
func (c *Client) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	start := time.Now()
	out, err := c.next.PutItem(ctx, params, optFns...)
	c.observe("PutItem", params.TableName, start, err)
	return out, err
}

// UpdateItem см. dynamodb.Client.UpdateItem
func (c *Client) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	start := time.Now()
	out, err := c.next.UpdateItem(ctx, params, optFns...)
	c.observe("UpdateItem", params.TableName, start, err)
	return out, err
}

// Query см. dynamodb.Client.Query
func (c *Client) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	start := time.Now()
	out, err := c.next.Query(ctx, params, optFns...)
	c.observe("Query", params.TableName, start, err)
	return out, err
}

// Scan см. dynamodb.Client.Scan
func (c *Client) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	start := time.Now()
	out, err := c.next.Scan(ctx, params, optFns...)
	c.observe("Scan", params.TableName, start, err)
	return out, err
}

// TransactWriteItems см. dynamodb.Client.TransactWriteItems.
// Таблица в метке - "transaction", так как транзакция может затрагивать несколько таблиц.
func (c *Client) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	start := time.Now()
	out, err := c.next.TransactWriteItems(ctx, params, optFns...)
	c.observe("TransactWriteItems", aws.String("transaction"), start, err)
	return out, err
}
