package reservation

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
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
)

// Repository репозиторий бронирований в DynamoDB
type Repository struct {
	db        DynamoAPI
	tableName string
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DynamoAPI, tableName string) *Repository {
	return &Repository{db: db, tableName: tableName}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - get item: %v", ErrExecRequest, err)
	}
	if out.Item == nil {
		return nil, ErrReservationNotFound
	}

	var item reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrUnmarshal, err)
	}
	// элементы блокировки и охранники слотов не являются бронированиями
	if item.LocationAddress == "" && item.Date == "" {
		return nil, ErrReservationNotFound
	}

	res, err := item.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrUnmarshal, err)
	}
	return res, nil
}

// GetByDateAndLocation получает все бронирования (включая отмененные) на дату по адресу ресторана
func (r *Repository) GetByDateAndLocation(ctx context.Context, date time.Time, locationAddress string) ([]*domain.Reservation, error) {
	items, err := dynamo.QueryAll(ctx, r.db, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dynamo.IndexReservationsByLocationDate),
		KeyConditionExpression: aws.String("locationAddress = :address AND #date = :date"),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":address": &types.AttributeValueMemberS{Value: locationAddress},
			":date":    &types.AttributeValueMemberS{Value: date.Format(domain.DateFormat)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndLocation - query: %v", ErrExecRequest, err)
	}

	return unmarshalReservations(items)
}

// GetByUser получает бронирования пользователя, начиная с самой поздней даты
func (r *Repository) GetByUser(ctx context.Context, userEmail string) ([]*domain.Reservation, error) {
	items, err := dynamo.QueryAll(ctx, r.db, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dynamo.IndexReservationsByUser),
		KeyConditionExpression: aws.String("userEmail = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: userEmail},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - query: %v", ErrExecRequest, err)
	}

	return unmarshalReservations(items)
}

// GetLockVersion возвращает текущую версию бронирований столика на дату.
// 0 означает, что на эту дату столик еще не бронировали.
func (r *Repository) GetLockVersion(ctx context.Context, locationID, tableNumber string, date time.Time) (int64, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lockID(locationID, tableNumber, date)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: GetLockVersion - get item: %v", ErrExecRequest, err)
	}
	if out.Item == nil {
		return 0, nil
	}

	var lock lockItem
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return 0, fmt.Errorf("%w: GetLockVersion: %v", ErrUnmarshal, err)
	}
	return lock.Version, nil
}

// Create сохраняет бронирование с оптимистичной блокировкой.
//
// В одной транзакции создается бронирование, увеличивается версия блокировки
// столика на дату и записывается охранник слота. Охранник существует, пока
// бронирование активно, поэтому уже зафиксированное бронирование того же слота
// отменит транзакцию (ErrSlotTaken), даже если индекс по дате его еще не вернул.
// Если версия изменилась после чтения (expectedVersion), возвращается
// ErrConcurrentModification.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation, expectedVersion int64) error {
	item, err := attributevalue.MarshalMap(fromDomain(res))
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrMarshal, err)
	}
	guard, err := attributevalue.MarshalMap(slotGuardItem{
		ID:            slotGuardID(res.LocationID, res.TableNumber, res.Date, res.TimeFrom),
		ReservationID: res.ID,
	})
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrMarshal, err)
	}

	lockCondition := "#version = :expected"
	if expectedVersion == 0 {
		lockCondition = "attribute_not_exists(#version)"
	}
	lockValues := map[string]types.AttributeValue{
		":next": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion+1)},
	}
	if expectedVersion != 0 {
		lockValues[":expected"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)}
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                item,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: lockID(res.LocationID, res.TableNumber, res.Date)},
					},
					UpdateExpression:    aws.String("SET #version = :next"),
					ConditionExpression: aws.String(lockCondition),
					ExpressionAttributeNames: map[string]string{
						"#version": "version",
					},
					ExpressionAttributeValues: lockValues,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                guard,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			if conditionFailed(canceled, slotGuardIndex) {
				return fmt.Errorf("%w: %v", ErrSlotTaken, err)
			}
			return fmt.Errorf("%w: %v", ErrConcurrentModification, err)
		}
		return fmt.Errorf("%w: Create - transact write: %v", ErrExecRequest, err)
	}

	return nil
}

// Cancel переводит бронирование в статус CANCELLED и освобождает его слот.
// Отменить можно только бронирование в статусе RESERVED.
func (r *Repository) Cancel(ctx context.Context, id string, cancelledAt time.Time) error {
	res, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return ErrCannotCancel
		}
		return err
	}
	if !res.IsActive() {
		return ErrCannotCancel
	}

	updatedAt, err := attributevalue.Marshal(cancelledAt)
	if err != nil {
		return fmt.Errorf("%w: Cancel: %v", ErrMarshal, err)
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET #status = :cancelled, updatedAt = :updatedAt"),
					ConditionExpression: aws.String("attribute_exists(id) AND #status = :reserved"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cancelled": &types.AttributeValueMemberS{Value: string(domain.ReservationStatusCancelled)},
						":reserved":  &types.AttributeValueMemberS{Value: string(domain.ReservationStatusReserved)},
						":updatedAt": updatedAt,
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: slotGuardID(res.LocationID, res.TableNumber, res.Date, res.TimeFrom)},
					},
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrCannotCancel
		}
		return fmt.Errorf("%w: Cancel - transact write: %v", ErrExecRequest, err)
	}

	return nil
}

// slotGuardIndex позиция охранника слота в транзакции Create
const slotGuardIndex = 2

// conditionFailed сообщает, отклонено ли условие элемента транзакции с индексом i
func conditionFailed(canceled *types.TransactionCanceledException, i int) bool {
	if i >= len(canceled.CancellationReasons) {
		return false
	}
	return aws.ToString(canceled.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

func unmarshalReservations(items []map[string]types.AttributeValue) ([]*domain.Reservation, error) {
	var raw []reservationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}

	result := make([]*domain.Reservation, 0, len(raw))
	for _, item := range raw {
		res, err := item.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
		}
		result = append(result, res)
	}
	return result, nil
}
