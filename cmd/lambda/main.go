package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/m04kA/SMC-RestaurantService/internal/app"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

// Точка входа AWS Lambda: события API Gateway проксируются в тот же роутер, что и у HTTP сервера.
// Конфигурация берется только из окружения функции.
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	handler, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}

	log.Info("SMC-RestaurantService lambda initialized")
	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
