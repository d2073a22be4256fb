package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teeman-cleaning/booking-service/internal/model"
	"github.com/teeman-cleaning/booking-service/internal/queue"
	"github.com/teeman-cleaning/booking-service/internal/repository"
	queue_publisher "github.com/teeman-cleaning/booking-service/internal/service"
)

// BookingHandler bundles dependencies for the booking endpoints: the
// public create path and the admin-gated list/detail/status paths.
type BookingHandler struct {
	Bookings *repository.BookingRepo
}

func NewBookingHandler(b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Bookings: b}
}

// ----- DTOs -----

type createBookingReq struct {
	FirstName   string `json:"first_name" form:"first_name"`
	LastName    string `json:"last_name" form:"last_name"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Address     string `json:"address" form:"address"`
	ServiceType string `json:"service_type" form:"service_type"`
	Message     string `json:"message" form:"message"`
	BookingDate string `json:"booking_date" form:"booking_date"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// bookingView is the JSON shape returned to the admin panel.  Dates and
// statuses are the effective values; the panel never sees a NULL.
type bookingView struct {
	BookingID   uint64 `json:"booking_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	ServiceType string `json:"service_type"`
	Message     string `json:"message"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func toView(b model.Booking) bookingView {
	return bookingView{
		BookingID:   b.ID,
		FirstName:   b.FirstName,
		LastName:    strOrEmpty(b.LastName),
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Address:     strOrEmpty(b.Address),
		ServiceType: b.ServiceType,
		Message:     strOrEmpty(b.Message),
		BookingDate: b.EffectiveDate().Format("2006-01-02 15:04:05"),
		Status:      b.EffectiveStatus(),
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns bookings for the admin table, newest effective date first.
// All query parameters are optional and AND-composed; an unparseable or
// non-positive limit is ignored rather than rejected.
func (h *BookingHandler) List(c echo.Context) error {
	f := repository.BookingFilter{
		Search:  strings.TrimSpace(c.QueryParam("search")),
		Service: strings.TrimSpace(c.QueryParam("service")),
		Status:  strings.TrimSpace(c.QueryParam("status")),
		Date:    strings.TrimSpace(c.QueryParam("date")),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.Limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx, f)
	if err != nil {
		c.Logger().Errorf("bookings: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch bookings."})
	}

	out := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toView(b))
	}
	return c.JSON(http.StatusOK, out)
}

// GetByID returns a single booking for the detail view.
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found."})
		}
		c.Logger().Errorf("bookings: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch booking details."})
	}
	return c.JSON(http.StatusOK, toView(b))
}

// UpdateStatus applies a status transition.  The value is checked against
// the four allowed literals before storage is touched; any status may
// replace any other and repeating a status is not an error.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found or no changes made."})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil || !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status provided."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.UpdateStatus(ctx, id, req.Status); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found or no changes made."})
		}
		c.Logger().Errorf("bookings: update status %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update booking status."})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Booking status updated successfully."})
}

// Create accepts a public form submission.  The row is durably inserted
// with status NULL (effective Pending) before the notification event is
// published; the 201 never waits on the broker or the mails.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required booking information."})
	}
	if req.FirstName == "" || req.Email == "" || req.PhoneNumber == "" ||
		req.ServiceType == "" || req.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required booking information."})
	}

	nb := repository.NewBooking{
		FirstName:   req.FirstName,
		LastName:    optional(req.LastName),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     optional(req.Address),
		ServiceType: req.ServiceType,
		Message:     optional(req.Message),
		BookingDate: req.BookingDate,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Bookings.Create(ctx, nb)
	if err != nil {
		c.Logger().Errorf("bookings: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create booking."})
	}

	// Fire-and-forget: the response does not depend on the publish outcome.
	ev := queue.BookingCreatedEvent{
		BookingID:   id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		BookingDate: req.BookingDate,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, ev)
	}()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Booking created successfully!", "bookingId": id})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
