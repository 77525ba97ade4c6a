package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_reservation"
	getAvailableTablesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_available_tables"
	getDishHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_dish"
	getDishesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_dishes"
	getLocationDishesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_location_dishes"
	getLocationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_locations"
	getPopularDishesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_popular_dishes"
	getProfileHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_profile"
	getUserReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_reservations"
	signInHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/sign_in"
	signUpHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/sign_up"
	updateProfileHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/update_profile"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	dishRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dish"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dynamo"
	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/auth"
	dishesService "github.com/m04kA/SMC-RestaurantService/internal/service/dishes"
	locationsService "github.com/m04kA/SMC-RestaurantService/internal/service/locations"
	reservationsService "github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	usersService "github.com/m04kA/SMC-RestaurantService/internal/service/users"
	createReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	getAvailableTablesUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-RestaurantService/pkg/dynmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// New подключается к DynamoDB и собирает HTTP handler сервиса.
// При включенных метриках коллектор регистрируется в prometheus.DefaultRegisterer.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (http.Handler, error) {
	client, err := dynamo.NewClient(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	log.Info("DynamoDB client initialized (region=%s, endpoint=%s)", cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	return Build(cfg, log, client, metricsCollector)
}

// Build собирает репозитории, use cases, сервисы и роутер поверх готового клиента DynamoDB.
// metricsCollector может быть nil.
func Build(cfg *config.Config, log *logger.Logger, db dynmetrics.API, metricsCollector *metrics.Metrics) (http.Handler, error) {
	grid, err := domain.NewSlotGridConfig(
		cfg.Slots.OpenTime,
		cfg.Slots.CloseTime,
		cfg.Slots.DurationMinutes,
		cfg.Slots.GapMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid slot grid: %w", err)
	}

	// Обращения к DynamoDB идут через обертку с метриками, если метрики включены
	var (
		storage  dynmetrics.API = db
		recorder getAvailableTablesUC.MetricsRecorder
	)
	if metricsCollector != nil {
		storage = dynmetrics.Wrap(db, metricsCollector)
		recorder = metricsCollector
		log.Info("DynamoDB metrics collection enabled")
	}

	// Репозитории
	locationRepository := locationRepo.NewRepository(storage, cfg.DynamoDB.LocationsTable)
	tableRepository := tableRepo.NewRepository(storage, cfg.DynamoDB.TablesTable)
	reservationRepository := reservationRepo.NewRepository(storage, cfg.DynamoDB.ReservationsTable)
	dishRepository := dishRepo.NewRepository(storage, cfg.DynamoDB.DishesTable)
	userRepository := userRepo.NewRepository(storage, cfg.DynamoDB.UsersTable)

	// Аутентификация
	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLMinute)*time.Minute,
	)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	locationSvc := locationsService.NewService(locationRepository, dishRepository, log)
	dishSvc := dishesService.NewService(dishRepository, log)
	userSvc := usersService.NewService(userRepository, hasher, tokens, log)

	// Use cases
	guestLimits := domain.GuestLimits{Min: cfg.Reservations.MinGuests, Max: cfg.Reservations.MaxGuests}
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		locationRepository,
		tableRepository,
		reservationRepository,
		grid,
		guestLimits,
		cfg.Slots.MatchToleranceMinutes,
		recorder,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		locationRepository,
		tableRepository,
		reservationRepository,
		grid,
		guestLimits,
		log,
	)

	// Handlers
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getLocations := getLocationsHandler.NewHandler(locationSvc, log)
	getLocationDishes := getLocationDishesHandler.NewHandler(locationSvc, log)
	getDishes := getDishesHandler.NewHandler(dishSvc, log)
	getPopularDishes := getPopularDishesHandler.NewHandler(dishSvc, log)
	getDish := getDishHandler.NewHandler(dishSvc, log)
	signUp := signUpHandler.NewHandler(userSvc, log)
	signIn := signInHandler.NewHandler(userSvc, log)
	getProfile := getProfileHandler.NewHandler(userSvc, log)
	updateProfile := updateProfileHandler.NewHandler(userSvc, log)

	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/tables/available", getAvailableTables.Handle).Methods(http.MethodGet)

	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}/speciality-dishes", getLocationDishes.Handle).Methods(http.MethodGet)

	// /dishes/popular регистрируется раньше /dishes/{id}
	api.HandleFunc("/dishes", getDishes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dishes/popular", getPopularDishes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dishes/{id}", getDish.Handle).Methods(http.MethodGet)

	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", cancelReservation.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/users/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/profile", updateProfile.Handle).Methods(http.MethodPut)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	recovery := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
	)

	return recovery(cors(r)), nil
}

// recoveryLogger пишет паники, пойманные RecoveryHandler, в логгер приложения
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}
