package table

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
)

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrExecRequest возвращается при ошибке выполнения запроса к DynamoDB
	ErrExecRequest = errors.New("table.repository: failed to execute request")

	// ErrMarshal возвращается при ошибке (де)сериализации элемента
	ErrMarshal = errors.New("table.repository: failed to (un)marshal item")
)

type tableItem struct {
	LocationID      string `dynamodbav:"locationId"`
	TableNumber     string `dynamodbav:"tableNumber"`
	LocationAddress string `dynamodbav:"locationAddress"`
	Capacity        int    `dynamodbav:"capacity"`
}

func (i tableItem) toDomain() *domain.RestaurantTable {
	return &domain.RestaurantTable{
		LocationID:      i.LocationID,
		LocationAddress: i.LocationAddress,
		TableNumber:     i.TableNumber,
		Capacity:        i.Capacity,
	}
}

// Repository репозиторий столиков. Столики хранятся по локации, отсортированные по номеру.
type Repository struct {
	db        DynamoAPI
	tableName string
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DynamoAPI, tableName string) *Repository {
	return &Repository{db: db, tableName: tableName}
}

// GetByLocation возвращает столики локации вместимостью не меньше minCapacity
// в порядке, в котором их вернул DynamoDB
func (r *Repository) GetByLocation(ctx context.Context, locationID string, minCapacity int) ([]*domain.RestaurantTable, error) {
	items, err := dynamo.QueryAll(ctx, r.db, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("locationId = :location"),
		FilterExpression:       aws.String("#capacity >= :guests"),
		ExpressionAttributeNames: map[string]string{
			"#capacity": "capacity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":location": &types.AttributeValueMemberS{Value: locationID},
			":guests":   &types.AttributeValueMemberN{Value: strconv.Itoa(minCapacity)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - query: %v", ErrExecRequest, err)
	}

	var raw []tableItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation: %v", ErrMarshal, err)
	}

	tables := make([]*domain.RestaurantTable, 0, len(raw))
	for _, item := range raw {
		tables = append(tables, item.toDomain())
	}
	return tables, nil
}

// GetByNumber возвращает столик локации по номеру
func (r *Repository) GetByNumber(ctx context.Context, locationID, tableNumber string) (*domain.RestaurantTable, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"locationId":  &types.AttributeValueMemberS{Value: locationID},
			"tableNumber": &types.AttributeValueMemberS{Value: tableNumber},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - get item: %v", ErrExecRequest, err)
	}
	if out.Item == nil {
		return nil, ErrTableNotFound
	}

	var item tableItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: GetByNumber: %v", ErrMarshal, err)
	}
	return item.toDomain(), nil
}

// Put создает или перезаписывает столик
func (r *Repository) Put(ctx context.Context, t *domain.RestaurantTable) error {
	item, err := attributevalue.MarshalMap(tableItem{
		LocationID:      t.LocationID,
		TableNumber:     t.TableNumber,
		LocationAddress: t.LocationAddress,
		Capacity:        t.Capacity,
	})
	if err != nil {
		return fmt.Errorf("%w: Put: %v", ErrMarshal, err)
	}

	if _, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("%w: Put - put item: %v", ErrExecRequest, err)
	}
	return nil
}
