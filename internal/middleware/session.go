package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/teeman-cleaning/booking-service/internal/repository" // session lookups against the database
    "github.com/teeman-cleaning/booking-service/internal/utils"      // token hashing
)

// SessionCookie is the name of the cookie carrying the opaque session
// token.  The cookie holds nothing but the token; every authorization
// fact lives server-side in the sessions table.
const SessionCookie = "session_token"

// AdminIDKey is the echo context key under which the gate stores the
// authenticated admin's id for downstream handlers.
const AdminIDKey = "admin_id"

// resolveAdmin checks the request's session cookie against the session
// store.  It returns the admin id and true only when the cookie names a
// persisted, unexpired session.  A missing cookie, an unknown token and
// an expired session all look the same to the caller: anonymous.
func resolveAdmin(c echo.Context, sessions *repository.SessionRepo) (uint64, bool) {
    cookie, err := c.Cookie(SessionCookie)
    if err != nil || cookie.Value == "" {
        return 0, false
    }
    adminID, err := sessions.Validate(c.Request().Context(), utils.HashSessionRaw(cookie.Value))
    if err != nil {
        return 0, false
    }
    return adminID, true
}

// RequireAdmin guards the JSON API surface.  Requests without an
// authenticated admin session receive an explicit 401 body; the admin
// front-end script reacts to that by bouncing to the login page.
func RequireAdmin(sessions *repository.SessionRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            adminID, ok := resolveAdmin(c, sessions)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized. Please log in."})
            }
            // Expose the admin id so handlers can attribute actions.
            c.Set(AdminIDKey, adminID)
            return next(c)
        }
    }
}

// RequireAdminPage guards the HTML pages.  A browser navigating to the
// admin panel without a session is redirected to the login entry point
// instead of being shown a JSON error it cannot render.
func RequireAdminPage(sessions *repository.SessionRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            adminID, ok := resolveAdmin(c, sessions)
            if !ok {
                return c.Redirect(http.StatusFound, "/login.html")
            }
            c.Set(AdminIDKey, adminID)
            return next(c)
        }
    }
}

// IsAuthenticated reports whether the request carries a valid admin
// session without enforcing anything.  The login page uses it to send
// already-authenticated admins straight to the panel.
func IsAuthenticated(c echo.Context, sessions *repository.SessionRepo) bool {
    _, ok := resolveAdmin(c, sessions)
    return ok
}
