package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/config"
	dishRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dish"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

// Создает таблицы DynamoDB (локально или в AWS) и при -seed заполняет справочные данные
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	seed := flag.Bool("seed", false, "put demo locations, tables and dishes")
	maxWait := flag.Duration("wait", 2*time.Minute, "max time to wait for a table to become active")
	flag.Parse()

	cfg, err := config.Load(*configPath)
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

	ctx := context.Background()

	client, err := dynamo.NewClient(ctx, cfg.DynamoDB)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client: %v", err)
	}

	if err := dynamo.EnsureTables(ctx, client, dynamo.Definitions(cfg.DynamoDB), *maxWait, log); err != nil {
		log.Fatal("Failed to create tables: %v", err)
	}
	log.Info("Tables are ready")

	if !*seed {
		return
	}

	locations := locationRepo.NewRepository(client, cfg.DynamoDB.LocationsTable)
	tables := tableRepo.NewRepository(client, cfg.DynamoDB.TablesTable)
	dishes := dishRepo.NewRepository(client, cfg.DynamoDB.DishesTable)

	for _, l := range seedLocations() {
		if err := locations.Put(ctx, l); err != nil {
			log.Fatal("Failed to seed location %s: %v", l.ID, err)
		}
	}
	for _, t := range seedTables() {
		if err := tables.Put(ctx, t); err != nil {
			log.Fatal("Failed to seed table %s/%s: %v", t.LocationID, t.TableNumber, err)
		}
	}
	for _, d := range seedDishes() {
		if err := dishes.Put(ctx, d); err != nil {
			log.Fatal("Failed to seed dish %s: %v", d.ID, err)
		}
	}
	log.Info("Seed data written: locations=%d, tables=%d, dishes=%d",
		len(seedLocations()), len(seedTables()), len(seedDishes()))
}
