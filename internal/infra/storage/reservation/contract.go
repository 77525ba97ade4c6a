package reservation

import "github.com/m04kA/SMC-RestaurantService/pkg/dynmetrics"

// Переиспользуем интерфейс из dynmetrics для работы с DynamoDB.
// Поддерживает *dynamodb.Client и *dynmetrics.Client
type DynamoAPI = dynmetrics.API
