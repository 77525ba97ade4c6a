package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	DynamoDB     DynamoDBConfig     `toml:"dynamodb"`
	Auth         AuthConfig         `toml:"auth"`
	Slots        SlotsConfig        `toml:"slots"`
	Reservations ReservationsConfig `toml:"reservations"`
	CORS         CORSConfig         `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования. Пустой File означает stdout.
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DynamoDBConfig настройки подключения к DynamoDB и имена таблиц.
// Endpoint задается для локального DynamoDB (docker amazon/dynamodb-local).
type DynamoDBConfig struct {
	Region            string `toml:"region"`
	Endpoint          string `toml:"endpoint"`
	AccessKeyID       string `toml:"access_key_id"`
	SecretAccessKey   string `toml:"secret_access_key"`
	MaxAttempts       int    `toml:"max_attempts"`
	LocationsTable    string `toml:"locations_table"`
	TablesTable       string `toml:"tables_table"`
	ReservationsTable string `toml:"reservations_table"`
	DishesTable       string `toml:"dishes_table"`
	UsersTable        string `toml:"users_table"`
}

// AuthConfig настройки выпуска токенов доступа
type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	Issuer         string `toml:"issuer"`
	TokenTTLMinute int    `toml:"token_ttl_minutes"`
	BcryptCost     int    `toml:"bcrypt_cost"`
}

// SlotsConfig сетка слотов бронирования.
// Время указывается в UTC: 06:30-18:30 UTC соответствует 10:30-22:30 по местному времени ресторанов.
type SlotsConfig struct {
	OpenTime              string `toml:"open_time"`
	CloseTime             string `toml:"close_time"`
	DurationMinutes       int    `toml:"duration_minutes"`
	GapMinutes            int    `toml:"gap_minutes"`
	MatchToleranceMinutes int    `toml:"match_tolerance_minutes"`
}

// ReservationsConfig ограничения бронирования
type ReservationsConfig struct {
	MinGuests int `toml:"min_guests"`
	MaxGuests int `toml:"max_guests"`
}

// CORSConfig настройки CORS для веб-клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "restaurant-service",
		},
		DynamoDB: DynamoDBConfig{
			Region:            "eu-west-3",
			MaxAttempts:       3,
			LocationsTable:    "Locations",
			TablesTable:       "Tables",
			ReservationsTable: "Reservations",
			DishesTable:       "Dishes",
			UsersTable:        "Users",
		},
		Auth: AuthConfig{
			Issuer:         "restaurant-service",
			TokenTTLMinute: 60,
			BcryptCost:     10,
		},
		Slots: SlotsConfig{
			OpenTime:              "06:30",
			CloseTime:             "18:30",
			DurationMinutes:       90,
			GapMinutes:            15,
			MatchToleranceMinutes: 15,
		},
		Reservations: ReservationsConfig{
			MinGuests: 1,
			MaxGuests: 10,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переопределения из окружения (и .env, если он есть).
// Если файл отсутствует, конфигурация собирается только из окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	return finish(cfg)
}

// LoadFromEnv собирает конфигурацию из значений по умолчанию и окружения.
// Используется в Lambda, где файла конфигурации нет.
func LoadFromEnv() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.HTTPPort = envInt("HTTP_PORT", cfg.Server.HTTPPort)

	cfg.Logs.Level = envStr("LOG_LEVEL", cfg.Logs.Level)
	cfg.Logs.File = envStr("LOG_FILE", cfg.Logs.File)

	cfg.Metrics.Enabled = envBool("METRICS_ENABLED", cfg.Metrics.Enabled)

	cfg.DynamoDB.Region = envStr("AWS_REGION", cfg.DynamoDB.Region)
	cfg.DynamoDB.Endpoint = envStr("DYNAMODB_ENDPOINT", cfg.DynamoDB.Endpoint)
	cfg.DynamoDB.LocationsTable = envStr("LOCATIONS_TABLE", cfg.DynamoDB.LocationsTable)
	cfg.DynamoDB.TablesTable = envStr("TABLES_TABLE", cfg.DynamoDB.TablesTable)
	cfg.DynamoDB.ReservationsTable = envStr("RESERVATIONS_TABLE", cfg.DynamoDB.ReservationsTable)
	cfg.DynamoDB.DishesTable = envStr("DISHES_TABLE", cfg.DynamoDB.DishesTable)
	cfg.DynamoDB.UsersTable = envStr("USERS_TABLE", cfg.DynamoDB.UsersTable)

	cfg.Auth.JWTSecret = envStr("JWT_SECRET", cfg.Auth.JWTSecret)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in [1, 65535]", ErrInvalidConfig)
	}

	if c.DynamoDB.Region == "" {
		return fmt.Errorf("%w: dynamodb.region is required", ErrInvalidConfig)
	}
	for name, table := range map[string]string{
		"locations_table":    c.DynamoDB.LocationsTable,
		"tables_table":       c.DynamoDB.TablesTable,
		"reservations_table": c.DynamoDB.ReservationsTable,
		"dishes_table":       c.DynamoDB.DishesTable,
		"users_table":        c.DynamoDB.UsersTable,
	} {
		if table == "" {
			return fmt.Errorf("%w: dynamodb.%s is required", ErrInvalidConfig, name)
		}
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLMinute <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_minutes must be positive", ErrInvalidConfig)
	}

	open, err := types.ParseTimeOfDay(c.Slots.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: slots.open_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.ParseTimeOfDay(c.Slots.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: slots.close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closing) {
		return fmt.Errorf("%w: slots.open_time must be before slots.close_time", ErrInvalidConfig)
	}
	if c.Slots.DurationMinutes <= 0 {
		return fmt.Errorf("%w: slots.duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Slots.GapMinutes < 0 {
		return fmt.Errorf("%w: slots.gap_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Slots.MatchToleranceMinutes < 0 {
		return fmt.Errorf("%w: slots.match_tolerance_minutes must not be negative", ErrInvalidConfig)
	}

	if c.Reservations.MinGuests < 1 || c.Reservations.MaxGuests < c.Reservations.MinGuests {
		return fmt.Errorf("%w: reservations guests bounds are inconsistent", ErrInvalidConfig)
	}

	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}
