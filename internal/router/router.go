package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/teeman-cleaning/booking-service/internal/handler"    // import the handlers that implement business logic
	"github.com/teeman-cleaning/booking-service/internal/middleware" // import the session auth gate
	"github.com/teeman-cleaning/booking-service/internal/repository" // session repository consumed by the gate
)

// RegisterRoutes registers routes that need no authentication and no
// handler state: the health check and the root redirect to the login page.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
	// The site has no landing page of its own; the root simply forwards
	// to the login entry point, as the original deployment did.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login.html")
	})
}

// RegisterAuth wires the login/logout endpoints and the two HTML pages.
// loginLimiter is the Redis token bucket; it wraps only POST /login so
// credential guessing is throttled while everything else stays free.
// The admin pages use the redirecting page gate: a browser without a
// session lands back on /login.html instead of receiving JSON.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, sessions *repository.SessionRepo, loginLimiter echo.MiddlewareFunc) {
	e.GET("/login.html", a.LoginPage)
	e.POST("/login", a.Login, loginLimiter)
	e.POST("/logout", a.Logout)

	pageGate := middleware.RequireAdminPage(sessions)
	e.GET("/admin.html", a.AdminPage, pageGate)
	// The panel file is also reachable under its on-disk name; gate that
	// path too so the static handler never serves it to strangers.
	e.GET("/admin_panel.html", a.AdminPage, pageGate)
}

// RegisterAPI wires the data endpoints under /api.  Creating a booking is
// the one public operation (it backs the customer-facing form); every
// other route sits behind the JSON 401 gate.  summaryCache wraps only the
// dashboard summary.
func RegisterAPI(e *echo.Echo, b *handler.BookingHandler, d *handler.DashboardHandler, sessions *repository.SessionRepo, summaryCache echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.POST("/bookings", b.Create)

	gated := api.Group("")
	gated.Use(middleware.RequireAdmin(sessions))
	gated.GET("/dashboard-summary", d.Summary, summaryCache)
	gated.GET("/bookings", b.List)
	gated.GET("/bookings/:id", b.GetByID)
	gated.PUT("/bookings/:id", b.UpdateStatus)
}
