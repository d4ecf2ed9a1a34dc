package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const testSecret = "routes-test-secret"

// RoutesTestSuite drives the full router against a freshly seeded in-memory database
type RoutesTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	seeded, err := database.Seed(db)
	require.NoError(t, err)
	require.True(t, seeded)
	return db
}

func (s *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = openSeededDB(s.T())
	s.router = SetupRouter(s.db, &config.Config{CORSOrigins: []string{"*"}}, quietLogger())
}

func (s *RoutesTestSuite) TearDownTest() {
	database.Close(s.db)
}

func (s *RoutesTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RoutesTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (s *RoutesTestSuite) offeringCount() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func (s *RoutesTestSuite) TestIndex() {
	w := s.request(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("<h1>Code challenge</h1>", w.Body.String())
}

func (s *RoutesTestSuite) TestHealth() {
	w := s.request(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RoutesTestSuite) TestListRestaurantsExposesSummaryOnly() {
	w := s.request(http.MethodGet, "/restaurants", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var restaurants []map[string]any
	s.decode(w, &restaurants)
	s.Require().Len(restaurants, 3)
	for _, r := range restaurants {
		s.ElementsMatch([]string{"id", "name", "address"}, keys(r))
	}
	s.Equal("Karen's Pizza Shack", restaurants[0]["name"])
}

func (s *RoutesTestSuite) TestListPizzas() {
	w := s.request(http.MethodGet, "/pizzas", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var pizzas []map[string]any
	s.decode(w, &pizzas)
	s.Require().Len(pizzas, 3)
	for _, p := range pizzas {
		s.ElementsMatch([]string{"id", "name", "ingredients"}, keys(p))
	}
}

func (s *RoutesTestSuite) TestShowRestaurantNestsPizzas() {
	w := s.request(http.MethodGet, "/restaurants/1", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{
		"address": "address1",
		"id": 1,
		"name": "Karen's Pizza Shack",
		"restaurant_pizzas": [
			{
				"id": 1,
				"pizza": {"id": 1, "ingredients": "Dough, Tomato Sauce, Cheese", "name": "Emma"},
				"pizza_id": 1,
				"price": 1,
				"restaurant_id": 1
			}
		]
	}`, w.Body.String())
}

func (s *RoutesTestSuite) TestShowMissingRestaurant() {
	for _, path := range []string{"/restaurants/999", "/restaurants/abc"} {
		w := s.request(http.MethodGet, path, nil)
		s.Equal(http.StatusNotFound, w.Code, path)
		s.JSONEq(`{"error": "Restaurant not found"}`, w.Body.String(), path)
	}
}

func (s *RoutesTestSuite) TestDeleteRestaurantCascadesToOfferings() {
	w := s.request(http.MethodDelete, "/restaurants/1", nil)
	s.Require().Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	w = s.request(http.MethodGet, "/restaurants/1", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var remaining int64
	s.Require().NoError(s.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&remaining).Error)
	s.Zero(remaining)
	s.Equal(int64(2), s.offeringCount())

	// Pizzas are independent of the restaurants selling them
	w = s.request(http.MethodGet, "/pizzas", nil)
	var pizzas []map[string]any
	s.decode(w, &pizzas)
	s.Len(pizzas, 3)

	w = s.request(http.MethodDelete, "/restaurants/1", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error": "Restaurant not found"}`, w.Body.String())
}

func (s *RoutesTestSuite) TestCreateRestaurantPizza() {
	w := s.request(http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price": 12.5, "pizza_id": 1, "restaurant_id": 1,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	s.decode(w, &created)
	s.ElementsMatch([]string{"id", "pizza", "pizza_id", "price", "restaurant", "restaurant_id"}, keys(created))
	s.Equal(12.5, created["price"])
	s.ElementsMatch([]string{"id", "name", "ingredients"}, keys(created["pizza"].(map[string]any)))
	s.ElementsMatch([]string{"id", "name", "address"}, keys(created["restaurant"].(map[string]any)))

	w = s.request(http.MethodGet, "/restaurants/1", nil)
	var detail models.RestaurantDetail
	s.decode(w, &detail)
	s.Require().Len(detail.RestaurantPizzas, 2)
	s.Equal(12.5, detail.RestaurantPizzas[1].Price)
	s.Equal(uint(created["id"].(float64)), detail.RestaurantPizzas[1].ID)
}

func (s *RoutesTestSuite) TestCreateRestaurantPizzaRejectsZeroPrice() {
	before := s.offeringCount()

	w := s.request(http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price": 0, "pizza_id": 1, "restaurant_id": 1,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors": ["Price must be a positive number"]}`, w.Body.String())
	s.Equal(before, s.offeringCount())
}

func (s *RoutesTestSuite) TestCreateRestaurantPizzaReportsEveryInvalidReference() {
	before := s.offeringCount()

	w := s.request(http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price": 5, "pizza_id": 100, "restaurant_id": 100,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors": [
		"Invalid pizza_id: Pizza not found",
		"Invalid restaurant_id: Restaurant not found"
	]}`, w.Body.String())
	s.Equal(before, s.offeringCount())
}

func (s *RoutesTestSuite) TestCreateRestaurantPizzaMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/restaurant_pizzas", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors": ["Invalid request body"]}`, w.Body.String())
}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "routes-test",
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestWriteGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openSeededDB(t)
	defer database.Close(db)

	router := SetupRouter(db, &config.Config{JWTSecret: testSecret, CORSOrigins: []string{"*"}}, quietLogger())

	send := func(method, path, token string, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Reads stay public
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/restaurants", "", "").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/pizzas", "", "").Code)

	offering := `{"price": 7, "pizza_id": 2, "restaurant_id": 1}`
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodPost, "/restaurant_pizzas", "", offering).Code)
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodDelete, "/restaurants/2", "", "").Code)

	userToken := signedToken(t, "user")
	assert.Equal(t, http.StatusForbidden, send(http.MethodPost, "/restaurant_pizzas", userToken, offering).Code)
	assert.Equal(t, http.StatusForbidden, send(http.MethodDelete, "/restaurants/2", userToken, "").Code)

	adminToken := signedToken(t, "admin")
	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "/restaurant_pizzas", adminToken, offering).Code)
	assert.Equal(t, http.StatusNoContent, send(http.MethodDelete, "/restaurants/2", adminToken, "").Code)
}
