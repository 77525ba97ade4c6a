package dish

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
)

var (
	// ErrDishNotFound возвращается, когда блюдо не найдено
	ErrDishNotFound = errors.New("dish.repository: dish not found")

	// ErrExecRequest возвращается при ошибке выполнения запроса к DynamoDB
	ErrExecRequest = errors.New("dish.repository: failed to execute request")

	// ErrMarshal возвращается при ошибке (де)сериализации элемента
	ErrMarshal = errors.New("dish.repository: failed to (un)marshal item")
)

type dishItem struct {
	ID          string  `dynamodbav:"id"`
	LocationID  string  `dynamodbav:"locationId"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	Weight      string  `dynamodbav:"weight"`
	ImageURL    string  `dynamodbav:"imageUrl"`
	DishType    string  `dynamodbav:"dishType"`
	Popularity  int     `dynamodbav:"popularity"`
	IsPopular   bool    `dynamodbav:"isPopular"`
	IsAvailable bool    `dynamodbav:"isAvailable"`
}

func (i dishItem) toDomain() *domain.Dish {
	return &domain.Dish{
		ID:          i.ID,
		LocationID:  i.LocationID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Weight:      i.Weight,
		ImageURL:    i.ImageURL,
		DishType:    domain.DishType(i.DishType),
		Popularity:  i.Popularity,
		IsPopular:   i.IsPopular,
		IsAvailable: i.IsAvailable,
	}
}

// Repository репозиторий блюд
type Repository struct {
	db        DynamoAPI
	tableName string
}

// NewRepository создает новый экземпляр репозитория блюд
func NewRepository(db DynamoAPI, tableName string) *Repository {
	return &Repository{db: db, tableName: tableName}
}

// GetByID возвращает блюдо по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - get item: %v", ErrExecRequest, err)
	}
	if out.Item == nil {
		return nil, ErrDishNotFound
	}

	var item dishItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrMarshal, err)
	}
	return item.toDomain(), nil
}

// GetAll возвращает все блюда, опционально только указанного типа
func (r *Repository) GetAll(ctx context.Context, dishType *domain.DishType) ([]*domain.Dish, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if dishType != nil {
		input.FilterExpression = aws.String("dishType = :dishType")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":dishType": &types.AttributeValueMemberS{Value: string(*dishType)},
		}
	}

	items, err := dynamo.ScanAll(ctx, r.db, input)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - scan: %v", ErrExecRequest, err)
	}
	return unmarshalDishes(items)
}

// GetPopular возвращает блюда, отмеченные как популярные
func (r *Repository) GetPopular(ctx context.Context) ([]*domain.Dish, error) {
	items, err := dynamo.ScanAll(ctx, r.db, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("isPopular = :popular"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":popular": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetPopular - scan: %v", ErrExecRequest, err)
	}
	return unmarshalDishes(items)
}

// GetByLocation возвращает блюда локации
func (r *Repository) GetByLocation(ctx context.Context, locationID string) ([]*domain.Dish, error) {
	items, err := dynamo.QueryAll(ctx, r.db, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dynamo.IndexDishesByLocation),
		KeyConditionExpression: aws.String("locationId = :location"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":location": &types.AttributeValueMemberS{Value: locationID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - query: %v", ErrExecRequest, err)
	}
	return unmarshalDishes(items)
}

// Put создает или перезаписывает блюдо
func (r *Repository) Put(ctx context.Context, d *domain.Dish) error {
	item, err := attributevalue.MarshalMap(dishItem{
		ID:          d.ID,
		LocationID:  d.LocationID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Weight:      d.Weight,
		ImageURL:    d.ImageURL,
		DishType:    string(d.DishType),
		Popularity:  d.Popularity,
		IsPopular:   d.IsPopular,
		IsAvailable: d.IsAvailable,
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

func unmarshalDishes(items []map[string]types.AttributeValue) ([]*domain.Dish, error) {
	var raw []dishItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	dishes := make([]*domain.Dish, 0, len(raw))
	for _, item := range raw {
		dishes = append(dishes, item.toDomain())
	}
	return dishes, nil
}
