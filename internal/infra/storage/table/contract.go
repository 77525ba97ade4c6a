package table

import "github.com/m04kA/SMC-RestaurantService/pkg/dynmetrics"

// Переиспользуем интерфейс из dynmetrics для работы с DynamoDB
type DynamoAPI = dynmetrics.API
