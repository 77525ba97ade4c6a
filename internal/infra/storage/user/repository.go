package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrUserAlreadyExists возвращается при попытке создать пользователя с занятым email
	ErrUserAlreadyExists = errors.New("user.repository: user already exists")

	// ErrExecRequest возвращается при ошибке выполнения запроса к DynamoDB
	ErrExecRequest = errors.New("user.repository: failed to execute request")

	// ErrMarshal возвращается при ошибке (де)сериализации элемента
	ErrMarshal = errors.New("user.repository: failed to (un)marshal item")
)

type userItem struct {
	Email        string    `dynamodbav:"email"`
	FirstName    string    `dynamodbav:"firstName"`
	LastName     string    `dynamodbav:"lastName"`
	PasswordHash string    `dynamodbav:"passwordHash"`
	ImageURL     string    `dynamodbav:"imageUrl"`
	Role         string    `dynamodbav:"role"`
	CreatedAt    time.Time `dynamodbav:"createdAt"`
	UpdatedAt    time.Time `dynamodbav:"updatedAt"`
}

func (i userItem) toDomain() *domain.User {
	return &domain.User{
		Email:        i.Email,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		PasswordHash: i.PasswordHash,
		ImageURL:     i.ImageURL,
		Role:         domain.Role(i.Role),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ProfileUpdate изменяемые поля профиля
type ProfileUpdate struct {
	FirstName string
	LastName  string
	ImageURL  string
	UpdatedAt time.Time
}

// Repository репозиторий пользователей, ключ - email
type Repository struct {
	db        DynamoAPI
	tableName string
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DynamoAPI, tableName string) *Repository {
	return &Repository{db: db, tableName: tableName}
}

// Create сохраняет нового пользователя; занятый email возвращает ErrUserAlreadyExists
func (r *Repository) Create(ctx context.Context, u *domain.User) error {
	item, err := attributevalue.MarshalMap(userItem{
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		ImageURL:     u.ImageURL,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrMarshal, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: Create - put item: %v", ErrExecRequest, err)
	}
	return nil
}

// GetByEmail возвращает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - get item: %v", ErrExecRequest, err)
	}
	if out.Item == nil {
		return nil, ErrUserNotFound
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: GetByEmail: %v", ErrMarshal, err)
	}
	return item.toDomain(), nil
}

// UpdateProfile обновляет профиль и возвращает пользователя после изменения
func (r *Repository) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*domain.User, error) {
	updatedAt, err := attributevalue.Marshal(upd.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile: %v", ErrMarshal, err)
	}

	out, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		UpdateExpression:    aws.String("SET firstName = :firstName, lastName = :lastName, imageUrl = :imageUrl, updatedAt = :updatedAt"),
		ConditionExpression: aws.String("attribute_exists(email)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":firstName": &types.AttributeValueMemberS{Value: upd.FirstName},
			":lastName":  &types.AttributeValueMemberS{Value: upd.LastName},
			":imageUrl":  &types.AttributeValueMemberS{Value: upd.ImageURL},
			":updatedAt": updatedAt,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: UpdateProfile - update item: %v", ErrExecRequest, err)
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile: %v", ErrMarshal, err)
	}
	return item.toDomain(), nil
}
