package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // SQL database interactions
    "net/http"     // HTTP status codes and primitives
    "strings"      // string manipulation utilities
    "time"         // timeouts for DB calls and cookie lifetimes

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/teeman-cleaning/booking-service/internal/config"     // app configuration
    "github.com/teeman-cleaning/booking-service/internal/middleware" // session cookie name and checks
    "github.com/teeman-cleaning/booking-service/internal/repository" // DB repositories
    "github.com/teeman-cleaning/booking-service/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for login/logout and the two HTML pages.
type AuthHandler struct {
    Cfg      config.Config
    Admins   *repository.AdminRepo
    Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo, s *repository.SessionRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Admins: a, Sessions: s}
}

type loginReq struct {
    Username string `json:"username" form:"username"`
    Password string `json:"password" form:"password"`
}

// invalidCredentials is the single message for every credential failure.
// Unknown username and wrong password must be indistinguishable so the
// login form cannot be used to enumerate admin accounts.
const invalidCredentials = "Invalid username or password."

// LoginPage serves the login form, or sends an already-authenticated admin
// straight to the panel.
func (h *AuthHandler) LoginPage(c echo.Context) error {
    if middleware.IsAuthenticated(c, h.Sessions) {
        return c.Redirect(http.StatusFound, "/admin.html")
    }
    return c.File("public/login.html")
}

// AdminPage serves the admin panel.  The page gate has already verified
// the session by the time this runs.
func (h *AuthHandler) AdminPage(c echo.Context) error {
    return c.File("public/admin_panel.html")
}

// Login verifies credentials and establishes a session.  The session row
// is persisted before the 200 goes out so the client never holds a cookie
// the server does not yet know about.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" || req.Password == "" {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": invalidCredentials})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    admin, err := h.Admins.GetByUsername(ctx, req.Username)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"message": invalidCredentials})
        }
        c.Logger().Errorf("login: admin lookup failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login."})
    }
    if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": invalidCredentials})
    }

    tok, err := utils.NewSessionToken(h.Cfg.SessionTTLHours)
    if err != nil {
        c.Logger().Errorf("login: token generation failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login."})
    }
    if err := h.Sessions.Create(ctx, admin.ID, utils.HashSessionRaw(tok.Raw), tok.Exp); err != nil {
        c.Logger().Errorf("login: session persist failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login."})
    }

    c.SetCookie(h.sessionCookie(tok.Raw, tok.Exp))
    return c.JSON(http.StatusOK, echo.Map{"message": "Login successful!"})
}

// Logout destroys the session row and clears the cookie.  Logging out
// without a session is fine; the cookie is cleared either way.
func (h *AuthHandler) Logout(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
        if err := h.Sessions.DeleteByHash(ctx, utils.HashSessionRaw(cookie.Value)); err != nil {
            c.Logger().Errorf("logout: session delete failed: %v", err)
            return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to logout."})
        }
    }

    c.SetCookie(h.expiredCookie())
    return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully."})
}

// sessionCookie builds the session cookie: httpOnly always, Secure in
// prod, and nothing in the value beyond the opaque token.
func (h *AuthHandler) sessionCookie(raw string, exp time.Time) *http.Cookie {
    return &http.Cookie{
        Name:     middleware.SessionCookie,
        Value:    raw,
        Path:     "/",
        Expires:  exp,
        MaxAge:   h.Cfg.SessionTTLHours * 3600,
        HttpOnly: true,
        Secure:   h.Cfg.Env == "prod",
        SameSite: http.SameSiteLaxMode,
    }
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
    return &http.Cookie{
        Name:     middleware.SessionCookie,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        Secure:   h.Cfg.Env == "prod",
        SameSite: http.SameSiteLaxMode,
    }
}
