package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m04kA/SMC-RestaurantService/internal/config"
)

// Имена вторичных индексов, общие для репозиториев и создания таблиц
const (
	IndexReservationsByLocationDate = "locationAddress-date-index"
	IndexReservationsByUser         = "userEmail-index"
	IndexDishesByLocation           = "locationId-index"
)

// TableAdmin операции DynamoDB для управления таблицами
type TableAdmin interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

var _ TableAdmin = (*dynamodb.Client)(nil)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TableDefinition описание таблицы: ключи и глобальные вторичные индексы
type TableDefinition struct {
	TableName string

	PartitionKey         AttributeDefinition
	SortKey              AttributeDefinition
	AdditionalAttributes []AttributeDefinition

	SecondaryIndexes []SecondaryIndexDefinition
}

// SecondaryIndexDefinition описание GSI
type SecondaryIndexDefinition struct {
	IndexName string

	PartitionKeyName string
	SortKeyName      string
}

// AttributeDefinition ключевой атрибут
type AttributeDefinition struct {
	Name       string
	ScalarType types.ScalarAttributeType
}

// Definitions возвращает схему всех таблиц сервиса
func Definitions(cfg config.DynamoDBConfig) []TableDefinition {
	return []TableDefinition{
		{
			TableName:    cfg.LocationsTable,
			PartitionKey: AttributeDefinition{"id", types.ScalarAttributeTypeS},
		},
		{
			TableName:    cfg.TablesTable,
			PartitionKey: AttributeDefinition{"locationId", types.ScalarAttributeTypeS},
			SortKey:      AttributeDefinition{"tableNumber", types.ScalarAttributeTypeS},
		},
		{
			TableName:    cfg.ReservationsTable,
			PartitionKey: AttributeDefinition{"id", types.ScalarAttributeTypeS},
			AdditionalAttributes: []AttributeDefinition{
				{Name: "locationAddress", ScalarType: types.ScalarAttributeTypeS},
				{Name: "date", ScalarType: types.ScalarAttributeTypeS},
				{Name: "userEmail", ScalarType: types.ScalarAttributeTypeS},
			},
			SecondaryIndexes: []SecondaryIndexDefinition{
				{
					IndexName:        IndexReservationsByLocationDate,
					PartitionKeyName: "locationAddress",
					SortKeyName:      "date",
				},
				{
					IndexName:        IndexReservationsByUser,
					PartitionKeyName: "userEmail",
					SortKeyName:      "date",
				},
			},
		},
		{
			TableName:    cfg.DishesTable,
			PartitionKey: AttributeDefinition{"id", types.ScalarAttributeTypeS},
			AdditionalAttributes: []AttributeDefinition{
				{Name: "locationId", ScalarType: types.ScalarAttributeTypeS},
			},
			SecondaryIndexes: []SecondaryIndexDefinition{
				{
					IndexName:        IndexDishesByLocation,
					PartitionKeyName: "locationId",
				},
			},
		},
		{
			TableName:    cfg.UsersTable,
			PartitionKey: AttributeDefinition{"email", types.ScalarAttributeTypeS},
		},
	}
}

// BuildCreateTableInput собирает запрос на создание таблицы (on-demand биллинг)
func BuildCreateTableInput(def TableDefinition) *dynamodb.CreateTableInput {
	attributeDefinitions := []types.AttributeDefinition{{
		AttributeName: aws.String(def.PartitionKey.Name),
		AttributeType: def.PartitionKey.ScalarType,
	}}
	if def.SortKey.Name != "" {
		attributeDefinitions = append(attributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(def.SortKey.Name),
			AttributeType: def.SortKey.ScalarType,
		})
	}
	for _, attr := range def.AdditionalAttributes {
		attributeDefinitions = append(attributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(attr.Name),
			AttributeType: attr.ScalarType,
		})
	}

	var indexes []types.GlobalSecondaryIndex
	for _, index := range def.SecondaryIndexes {
		indexes = append(indexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index.IndexName),
			KeySchema:  keySchema(index.PartitionKeyName, index.SortKeyName),
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(def.TableName),
		AttributeDefinitions:   attributeDefinitions,
		KeySchema:              keySchema(def.PartitionKey.Name, def.SortKey.Name),
		BillingMode:            types.BillingModePayPerRequest,
		GlobalSecondaryIndexes: indexes,
	}
}

func keySchema(partitionKey, sortKey string) []types.KeySchemaElement {
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(partitionKey),
		KeyType:       types.KeyTypeHash,
	}}
	if sortKey != "" {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sortKey),
			KeyType:       types.KeyTypeRange,
		})
	}
	return schema
}

// CreateTable создает таблицу и ждет, пока она станет активной
func CreateTable(ctx context.Context, client TableAdmin, def TableDefinition, maxWait time.Duration) error {
	if _, err := client.CreateTable(ctx, BuildCreateTableInput(def)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", def.TableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.TableName)}, maxWait)
	if err != nil {
		return fmt.Errorf("failed waiting for table %s: %w", def.TableName, err)
	}
	return nil
}

// ExistingTableNames возвращает имена всех таблиц аккаунта/эндпоинта
func ExistingTableNames(ctx context.Context, client TableAdmin) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	input := &dynamodb.ListTablesInput{}
	for {
		out, err := client.ListTables(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		for _, name := range out.TableNames {
			names[name] = struct{}{}
		}
		if out.LastEvaluatedTableName == nil {
			return names, nil
		}
		input.ExclusiveStartTableName = out.LastEvaluatedTableName
	}
}

// EnsureTables создает отсутствующие таблицы. Существующие таблицы не изменяются.
func EnsureTables(ctx context.Context, client TableAdmin, defs []TableDefinition, maxWait time.Duration, log Logger) error {
	existing, err := ExistingTableNames(ctx, client)
	if err != nil {
		return err
	}

	for _, def := range defs {
		if _, ok := existing[def.TableName]; ok {
			log.Info("EnsureTables: table %s already exists", def.TableName)
			continue
		}
		log.Info("EnsureTables: creating table %s", def.TableName)
		if err := CreateTable(ctx, client, def, maxWait); err != nil {
			log.Error("EnsureTables: %v", err)
			return err
		}
	}
	return nil
}
