package location

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
)

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location.repository: location not found")

	// ErrExecRequest возвращается при ошибке выполнения запроса к DynamoDB
	ErrExecRequest = errors.New("location.repository: failed to execute request")

	// ErrMarshal возвращается при ошибке (де)сериализации элемента
	ErrMarshal = errors.New("location.repository: failed to (un)marshal item")
)

type locationItem struct {
	ID               string  `dynamodbav:"id"`
	Address          string  `dynamodbav:"address"`
	Description      string  `dynamodbav:"description"`
	ImageURL         string  `dynamodbav:"imageUrl"`
	Rating           float64 `dynamodbav:"rating"`
	TotalCapacity    int     `dynamodbav:"totalCapacity"`
	AverageOccupancy float64 `dynamodbav:"averageOccupancy"`
}

func (i locationItem) toDomain() *domain.Location {
	return &domain.Location{
		ID:               i.ID,
		Address:          i.Address,
		Description:      i.Description,
		ImageURL:         i.ImageURL,
		Rating:           i.Rating,
		TotalCapacity:    i.TotalCapacity,
		AverageOccupancy: i.AverageOccupancy,
	}
}

// Repository репозиторий локаций ресторана
type Repository struct {
	db        DynamoAPI
	tableName string
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DynamoAPI, tableName string) *Repository {
	return &Repository{db: db, tableName: tableName}
}

// GetByID возвращает локацию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
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
		return nil, ErrLocationNotFound
	}

	var item locationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrMarshal, err)
	}
	return item.toDomain(), nil
}

// GetAll возвращает все локации, отсортированные по адресу
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Location, error) {
	items, err := dynamo.ScanAll(ctx, r.db, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - scan: %v", ErrExecRequest, err)
	}

	var raw []locationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("%w: GetAll: %v", ErrMarshal, err)
	}

	locations := make([]*domain.Location, 0, len(raw))
	for _, item := range raw {
		locations = append(locations, item.toDomain())
	}
	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].Address < locations[j].Address
	})
	return locations, nil
}

// Put создает или перезаписывает локацию
func (r *Repository) Put(ctx context.Context, l *domain.Location) error {
	item, err := attributevalue.MarshalMap(locationItem{
		ID:               l.ID,
		Address:          l.Address,
		Description:      l.Description,
		ImageURL:         l.ImageURL,
		Rating:           l.Rating,
		TotalCapacity:    l.TotalCapacity,
		AverageOccupancy: l.AverageOccupancy,
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
