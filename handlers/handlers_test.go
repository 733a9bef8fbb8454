package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttravelhq/smart-travel-backend/middleware"
	"github.com/smarttravelhq/smart-travel-backend/repository"
	"github.com/smarttravelhq/smart-travel-backend/services"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

const testSecret = "test-secret"

// newTestStack wires the handler services onto a sqlmock database and
// builds a router with the same route table the app uses.
func newTestStack(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	expenseService := services.NewExpenseService(repository.NewExpenseRepository(db))
	handlerServices = &HandlerServices{
		AuthService:    services.NewAuthService(repository.NewUserRepository(db), testSecret, 24),
		TripService:    services.NewTripService(repository.NewTripRepository(db)),
		ExpenseService: expenseService,
		ReportService:  services.NewReportService(expenseService),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", Signup)
	router.POST("/login", Login)
	authorized := router.Group("/", middleware.Auth(testSecret))
	{
		authorized.POST("/add-trip", AddTrip)
		authorized.GET("/get-trips", GetTrips)
		authorized.POST("/delete-trip", DeleteTrip)
		authorized.GET("/get-expenses/:tripId", GetExpenses)
	}

	return router, mock, func() { db.Close() }
}

func doJSON(router *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, userID int) *http.Cookie {
	token, err := utils.GenerateToken(testSecret, userID, "Alice", 0)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func TestSignup_DuplicateEmailEnvelope(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	w := doJSON(router, "POST", "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2secret"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Email already exists"}`, w.Body.String())
}

func TestSignup_Success(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doJSON(router, "POST", "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2secret"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	assert.Contains(t, w.Body.String(), `"redirect":"/login-page"`)
}

func TestLogin_InvalidCredentialsEnvelope(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, name, email, password_hash FROM users").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}))

	w := doJSON(router, "POST", "/login",
		`{"email":"alice@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Invalid Credentials"}`, w.Body.String())
}

func TestAddTrip_RequiresSession(t *testing.T) {
	router, _, closeDB := newTestStack(t)
	defer closeDB()

	w := doJSON(router, "POST", "/add-trip",
		`{"trip_name":"Paris","destination":"Paris, FR","latitude":48.8566,"longitude":2.3522}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not logged in")
}

func TestAddTrip_RejectsZeroCoordinates(t *testing.T) {
	router, _, closeDB := newTestStack(t)
	defer closeDB()

	w := doJSON(router, "POST", "/add-trip",
		`{"trip_name":"Paris","destination":"Paris, FR","latitude":0,"longitude":0,"budget":1000}`,
		sessionCookie(t, 1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Trip name, destination, and location are required")
}

func TestAddTrip_RejectsMalformedNumbers(t *testing.T) {
	router, _, closeDB := newTestStack(t)
	defer closeDB()

	w := doJSON(router, "POST", "/add-trip",
		`{"trip_name":"Paris","destination":"Paris, FR","latitude":"north","longitude":2.3522}`,
		sessionCookie(t, 1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid numeric input")
}

func TestDeleteTrip_ForeignTripEnvelope(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM trips WHERE id").
		WithArgs(7, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doJSON(router, "POST", "/delete-trip", `{"trip_id":7}`, sessionCookie(t, 1))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Trip not found or not authorized"}`, w.Body.String())
}

func TestGetExpenses_SummaryPayload(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	tripColumns := []string{
		"id", "user_id", "trip_name", "destination", "start_date",
		"end_date", "budget", "latitude", "longitude",
	}
	mock.ExpectQuery("SELECT id, user_id, trip_name").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(tripColumns).
			AddRow(7, 1, "Paris", "Paris, FR", nil, nil, 1000.0, 48.8566, 2.3522))
	mock.ExpectQuery("SELECT id, trip_id, category, amount, description FROM expenses").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "category", "amount", "description"}).
			AddRow(1, 7, "food", 150.0, nil))

	w := doJSON(router, "GET", "/get-expenses/7", "", sessionCookie(t, 1))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total_spent":150`)
	assert.Contains(t, body, `"trip_budget":1000`)
	assert.Contains(t, body, `"remaining_budget":850`)
}

func TestGetExpenses_ForeignOwnerForbidden(t *testing.T) {
	router, mock, closeDB := newTestStack(t)
	defer closeDB()

	tripColumns := []string{
		"id", "user_id", "trip_name", "destination", "start_date",
		"end_date", "budget", "latitude", "longitude",
	}
	mock.ExpectQuery("SELECT id, user_id, trip_name").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(tripColumns).
			AddRow(7, 2, "Paris", "Paris, FR", nil, nil, 1000.0, 48.8566, 2.3522))

	w := doJSON(router, "GET", "/get-expenses/7", "", sessionCookie(t, 1))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Not authorized"}`, w.Body.String())
}
