package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/teeman-cleaning/booking-service/internal/repository"
)

var errDB = errors.New("db down")

func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewBookingHandler(repository.NewBookingRepo(db)), mock
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func bookingRowCols() []string {
	return []string{
		"booking_id", "first_name", "last_name", "email", "phone_number",
		"address", "service_type", "message", "booking_date", "status", "created_at",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("missing required field is rejected before storage", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		e := echo.New()
		// phone_number omitted
		req := jsonReq(http.MethodPost, "/api/bookings",
			`{"first_name":"Ann","email":"ann@example.com","service_type":"Deep Cleaning","booking_date":"2024-06-01"}`)
		rec := httptest.NewRecorder()
		if err := h.Create(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("storage touched on validation failure: %v", err)
		}
	})

	t.Run("valid submission returns 201 with the new id", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		mock.ExpectExec("INSERT INTO bookings").
			WithArgs("Ann", nil, "not-really-an-email", "555-0100", nil, "Deep Cleaning", nil, "2024-06-01").
			WillReturnResult(sqlmock.NewResult(42, 1))

		e := echo.New()
		// The email is malformed on purpose: no format validation applies,
		// and the notification path failing cannot touch this response.
		req := jsonReq(http.MethodPost, "/api/bookings",
			`{"first_name":"Ann","email":"not-really-an-email","phone_number":"555-0100","service_type":"Deep Cleaning","booking_date":"2024-06-01"}`)
		rec := httptest.NewRecorder()
		if err := h.Create(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Message   string `json:"message"`
			BookingID uint64 `json:"bookingId"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body: %v", err)
		}
		if resp.BookingID != 42 {
			t.Errorf("bookingId = %d, want 42", resp.BookingID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations: %v", err)
		}
	})

	t.Run("insert failure is a 500", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		mock.ExpectExec("INSERT INTO bookings").WillReturnError(errDB)

		e := echo.New()
		req := jsonReq(http.MethodPost, "/api/bookings",
			`{"first_name":"Ann","email":"ann@example.com","phone_number":"555-0100","service_type":"Deep Cleaning","booking_date":"2024-06-01"}`)
		rec := httptest.NewRecorder()
		if err := h.Create(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("invalid status never reaches storage", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		e := echo.New()
		req := jsonReq(http.MethodPut, "/api/bookings/4", `{"status":"NotAStatus"}`)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("4")
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("storage touched on invalid status: %v", err)
		}
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs("Completed", uint64(12345)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		e := echo.New()
		req := jsonReq(http.MethodPut, "/api/bookings/12345", `{"status":"Completed"}`)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("12345")
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("valid transition succeeds", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs("Cancelled", uint64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		e := echo.New()
		req := jsonReq(http.MethodPut, "/api/bookings/4", `{"status":"Cancelled"}`)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("4")
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body: %v", err)
		}
		if !resp.Success {
			t.Error("success = false, want true")
		}
	})
}

func TestListEndpoint(t *testing.T) {
	t.Run("null status row is served as Pending", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows(bookingRowCols()).AddRow(
			7, "Ann", nil, "ann@example.com", "555-0100",
			nil, "Deep Cleaning", nil, nil, nil, created)
		// A filter for Pending must match the NULL-status row.
		mock.ExpectQuery("SELECT .* FROM bookings").
			WithArgs("Pending").
			WillReturnRows(rows)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Pending", nil)
		rec := httptest.NewRecorder()
		if err := h.List(e.NewContext(req, rec)); err != nil {
			t.Fatalf("List: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var out []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("body: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("len = %d, want 1", len(out))
		}
		if out[0]["status"] != "Pending" {
			t.Errorf("status = %v, want Pending", out[0]["status"])
		}
		if out[0]["booking_date"] != "2024-06-01 09:30:00" {
			t.Errorf("booking_date = %v, want effective created_at", out[0]["booking_date"])
		}
	})

	t.Run("bad limit is ignored", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		// No LIMIT clause and no limit arg expected.
		mock.ExpectQuery("SELECT .* FROM bookings WHERE 1=1 ORDER BY").
			WillReturnRows(sqlmock.NewRows(bookingRowCols()))
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings?limit=banana", nil)
		rec := httptest.NewRecorder()
		if err := h.List(e.NewContext(req, rec)); err != nil {
			t.Fatalf("List: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations: %v", err)
		}
	})
}

func TestGetByIDEndpoint(t *testing.T) {
	t.Run("non-numeric id is a 404", func(t *testing.T) {
		h, _ := newBookingHandler(t)
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")
		if err := h.GetByID(c); err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		h, mock := newBookingHandler(t)
		mock.ExpectQuery("SELECT .* FROM bookings WHERE booking_id").
			WithArgs(uint64(99)).
			WillReturnRows(sqlmock.NewRows(bookingRowCols()))
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")
		if err := h.GetByID(c); err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
