package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/pkg/dynmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

// memoryDynamo хранит элементы по таблице и значению ключа email/id.
// Query и Scan всегда возвращают пустой результат.
type memoryDynamo struct {
	dynmetrics.API

	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	calls int
}

func newMemoryDynamo() *memoryDynamo {
	return &memoryDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(table string, key map[string]types.AttributeValue) string {
	for _, name := range []string{"email", "id"} {
		if v, ok := key[name].(*types.AttributeValueMemberS); ok {
			return table + "/" + v.Value
		}
	}
	return table
}

func (m *memoryDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	key := itemKey(aws.ToString(in.TableName), in.Item)
	if _, exists := m.items[key]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	m.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	return &dynamodb.GetItemOutput{Item: m.items[itemKey(aws.ToString(in.TableName), in.Key)]}, nil
}

func (m *memoryDynamo) Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return &dynamodb.QueryOutput{}, nil
}

func (m *memoryDynamo) Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return &dynamodb.ScanOutput{}, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = 4
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func buildHandler(t *testing.T, db *memoryDynamo, m *metrics.Metrics) http.Handler {
	t.Helper()
	h, err := Build(testConfig(), logger.NewNop(), db, m)
	require.NoError(t, err)
	return h
}

func do(h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	h := buildHandler(t, newMemoryDynamo(), nil)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/v1/reservations"},
		{http.MethodPost, "/api/v1/reservations"},
		{http.MethodDelete, "/api/v1/reservations/res-1"},
		{http.MethodGet, "/api/v1/users/profile"},
		{http.MethodPut, "/api/v1/users/profile"},
	} {
		rec := do(h, tc.method, tc.target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := buildHandler(t, newMemoryDynamo(), nil)

	rec := do(h, http.MethodGet, "/api/v1/locations", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/v1/dishes/popular", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dishes":[]}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/v1/dishes/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AvailableTablesValidatesBeforeStorage(t *testing.T) {
	db := newMemoryDynamo()
	h := buildHandler(t, db, nil)

	rec := do(h, http.MethodGet, "/api/v1/tables/available?locationId=loc-1&date=2099-11-20&guests=0", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "guests")
	assert.Zero(t, db.calls)
}

func TestRouter_GuestLimitsFromConfig(t *testing.T) {
	db := newMemoryDynamo()
	cfg := testConfig()
	cfg.Reservations.MaxGuests = 4
	h, err := Build(cfg, logger.NewNop(), db, nil)
	require.NoError(t, err)

	rec := do(h, http.MethodGet, "/api/v1/tables/available?locationId=loc-1&date=2099-11-20&guests=5", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be between 1 and 4")
	assert.Zero(t, db.calls)
}

func TestRouter_SignUpSignInProfile(t *testing.T) {
	h := buildHandler(t, newMemoryDynamo(), nil)

	signUp := `{"firstName":"Nino","lastName":"Beridze","email":"Nino@Example.com","password":"Secret#12"}`
	rec := do(h, http.MethodPost, "/api/v1/auth/sign-up", signUp, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/v1/auth/sign-up", signUp, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/auth/sign-in", `{"email":"nino@example.com","password":"Wrong#123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/auth/sign-in", `{"email":"nino@example.com","password":"Secret#12"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var signIn struct {
		AccessToken string `json:"accessToken"`
		Username    string `json:"username"`
		Role        string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signIn))
	assert.NotEmpty(t, signIn.AccessToken)
	assert.Equal(t, "Nino Beridze", signIn.Username)
	assert.Equal(t, "CUSTOMER", signIn.Role)

	rec = do(h, http.MethodGet, "/api/v1/users/profile", "", signIn.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"nino@example.com"`)

	rec = do(h, http.MethodGet, "/api/v1/reservations", "", signIn.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reservations":[]}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := buildHandler(t, newMemoryDynamo(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/reservations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	m := metrics.NewWithRegistry("restaurant-service-test", prometheus.NewRegistry())
	h := buildHandler(t, newMemoryDynamo(), m)

	rec := do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
