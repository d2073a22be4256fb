package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teeman-cleaning/booking-service/internal/repository"
)

// DashboardHandler serves the aggregate counts shown at the top of the
// admin panel.
type DashboardHandler struct {
	Bookings *repository.BookingRepo
}

func NewDashboardHandler(b *repository.BookingRepo) *DashboardHandler {
	return &DashboardHandler{Bookings: b}
}

// Summary returns total/pending/completed booking counts.  The counts are
// independent snapshots; they are not wrapped in a transaction because a
// tiny staleness window between them is acceptable for a dashboard.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Bookings.Summary(ctx)
	if err != nil {
		c.Logger().Errorf("dashboard: summary failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch dashboard summary."})
	}
	return c.JSON(http.StatusOK, s)
}
