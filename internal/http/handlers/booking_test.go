package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusride/internal/config"
	api "campusride/internal/http"
	"campusride/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	a := handlers.API{
		Env: config.Env{AppEnv: "test", JWTSecret: "test-secret"},
		DB:  db,
	}
	return api.NewRouter(a), mock, db
}

func TestGetBookingUnknownReferenceReturns404(t *testing.T) {
	r, mock, db := newTestRouter(t)
	defer db.Close()

	mock.ExpectQuery("FROM pnrs p").
		WithArgs("no-such-ref").
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking/pnr/no-such-ref", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if success, ok := body["success"].(bool); !ok || success {
		t.Fatalf("expected success:false, got %v", body["success"])
	}
}

func TestCreateBookingMissingFieldsReturns400(t *testing.T) {
	r, _, db := newTestRouter(t)
	defer db.Close()

	payload := `{"scheduleId":"sched-1","userId":"","driverId":"driver-3"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("expected success:false in body, got %s", w.Body.String())
	}
}

func TestCreateBookingHTTPSuccess(t *testing.T) {
	r, mock, db := newTestRouter(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pnrs").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE schedules SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET wallet").
		WithArgs(150.0, "user-7").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM drivers WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone_number", "vehicle_number", "vehicle_type",
		}).AddRow("driver-3", "Ravi", "Kumar", "ravi@example.com", "555-0101", "KA-01-1234", "minibus"))
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone_number",
		}).AddRow("user-7", "Asha", "Menon", "asha@example.com", "555-0102"))
	mock.ExpectCommit()

	payload := `{
		"scheduleId":"sched-1","userId":"user-7","driverId":"driver-3",
		"locationFrom":"North Campus Gate","locationTo":"Central Library",
		"date":"2025-03-10","time":"08:30","distance":4.2,"price":150.0
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		PNR     string `json:"pnr"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success || body.PNR == "" {
		t.Fatalf("expected success with a booking reference, got %s", w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _, db := newTestRouter(t)
	defer db.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
