package customer_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/carhive/rental-api/internal/db"
	"github.com/carhive/rental-api/internal/db/dbtest"
	"github.com/carhive/rental-api/internal/handlers"
)

func init() { gin.SetMode(gin.TestMode) }

func setup(t *testing.T) (*db.DB, *gin.Engine) {
	d := dbtest.New(t)
	return d, handlers.Router(d)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func obj(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func list(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/customer/register",
		gin.H{"name": "Alice", "email": "a@x.com", "password": "pw", "mobile": "555"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndDuplicate(t *testing.T) {
	d, r := setup(t)

	w := do(t, r, http.MethodPost, "/customer/register",
		gin.H{"name": "Alice", "email": "a@x.com", "password": "pw", "mobile": "555"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Customer registered successfully", obj(t, w)["message"])

	w = do(t, r, http.MethodPost, "/customer/register",
		gin.H{"name": "Alice", "email": "a@x.com", "password": "pw", "mobile": "555"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Email already exists", obj(t, w)["error"])

	var count int
	require.NoError(t, d.Get(&count, "SELECT COUNT(*) FROM customers WHERE email=?", "a@x.com"))
	require.Equal(t, 1, count)
}

func TestLoginReturnsIDAndMobile(t *testing.T) {
	_, r := setup(t)
	register(t, r)

	w := do(t, r, http.MethodPost, "/customer/login", gin.H{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	body := obj(t, w)
	require.Equal(t, "Login successful", body["message"])
	require.Equal(t, float64(1), body["customer_id"])
	require.Equal(t, "555", body["mobile"])

	w = do(t, r, http.MethodPost, "/customer/login", gin.H{"email": "a@x.com", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", obj(t, w)["error"])
}

func TestRentMarksCarUnavailable(t *testing.T) {
	d, r := setup(t)
	register(t, r)
	d.MustExec("INSERT INTO cars (model,brand,price_per_day) VALUES ('Corolla','Toyota',45)")

	w := do(t, r, http.MethodPost, "/customer/rent",
		gin.H{"customer_id": 1, "car_id": 1, "start_date": "2026-09-01", "end_date": "2026-09-05"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Car rented successfully", obj(t, w)["message"])

	w = do(t, r, http.MethodGet, "/cars", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cars := list(t, w)
	require.Len(t, cars, 1)
	require.Equal(t, false, cars[0]["available"])

	w = do(t, r, http.MethodGet, "/customer/bookings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := list(t, w)
	require.Len(t, rows, 1)
	require.Equal(t, "Corolla", rows[0]["model"])
	require.Equal(t, "Booked", rows[0]["status"])
	require.Equal(t, "2026-09-01", rows[0]["start_date"])
}

func TestRentUnknownCarFailsForeignKey(t *testing.T) {
	_, r := setup(t)
	register(t, r)

	w := do(t, r, http.MethodPost, "/customer/rent",
		gin.H{"customer_id": 1, "car_id": 42, "start_date": "2026-09-01", "end_date": "2026-09-05"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelUsesCustomerLiteral(t *testing.T) {
	d, r := setup(t)
	register(t, r)
	d.MustExec("INSERT INTO cars (model,brand,price_per_day) VALUES ('Corolla','Toyota',45)")
	d.MustExec("INSERT INTO bookings (customer_id,car_id,start_date,end_date,status) VALUES (1,1,'2026-09-01','2026-09-05','Booked')")

	w := do(t, r, http.MethodPut, "/customer/cancel_booking/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status string
	require.NoError(t, d.Get(&status, "SELECT status FROM bookings WHERE id=1"))
	// Distinct literal from the admin path's "Cancelled"
	require.Equal(t, "Canceled by Customer", status)

	// Car availability is never restored by cancellation
	var available bool
	d.MustExec("UPDATE cars SET available=0 WHERE id=1")
	w = do(t, r, http.MethodPut, "/customer/cancel_booking/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, d.Get(&available, "SELECT available FROM cars WHERE id=1"))
	require.False(t, available)
}
