package handlers

import (
	"errors"
	"time"

	applog "learnhub/internal/log"
	"learnhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type resetReq struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func setAuthCookies(c *fiber.Ctx, role string, remember bool) {
	ttl := 24 * time.Hour
	if remember {
		ttl = 30 * 24 * time.Hour
	}
	expires := time.Now().Add(ttl)
	c.Cookie(&fiber.Cookie{Name: CookieAuthToken, Value: AuthTokenValue, Path: "/", Expires: expires, SameSite: fiber.CookieSameSiteLaxMode})
	c.Cookie(&fiber.Cookie{Name: CookieUserRole, Value: role, Path: "/", Expires: expires, SameSite: fiber.CookieSameSiteLaxMode})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: CookieAuthToken, Value: "", Path: "/", Expires: expired, SameSite: fiber.CookieSameSiteLaxMode})
	c.Cookie(&fiber.Cookie{Name: CookieUserRole, Value: "", Path: "/", Expires: expired, SameSite: fiber.CookieSameSiteLaxMode})
}

// failAuth translates the service error taxonomy into the wire shape.
func failAuth(c *fiber.Ctx, action string, err error) error {
	var ve *services.ValidationError
	var se *services.StoreError
	switch {
	case errors.As(err, &ve):
		if msg, ok := ve.Fields["_"]; ok && len(ve.Fields) == 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "validationErrors": ve.Fields})
	case errors.Is(err, services.ErrBadRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, action+".fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEmailUnknown):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrMisconfigured):
		applog.Error(c, action+".misconfigured", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server misconfigured"})
	case errors.As(err, &se):
		applog.Error(c, action+".store", se.Err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "store error", "details": se.Err.Error()})
	default:
		applog.Error(c, action+".error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error", "details": err.Error()})
	}
}

// POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.Auth.Register(req.Name, req.Email, req.Password, req.Role); err != nil {
		return failAuth(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register.success", map[string]any{"email": req.Email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "registered"})
}

// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		return failAuth(c, "auth.login", err)
	}
	setAuthCookies(c, user.Role, req.Remember)
	applog.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{"success": true, "message": "login successful", "user": user})
}

// POST /api/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.Auth.ResetPassword(req.Email, req.NewPassword); err != nil {
		return failAuth(c, "auth.reset", err)
	}
	applog.Audit(c, "auth.reset.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{"success": true, "message": "password reset"})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearAuthCookies(c)
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"success": true, "message": "logged out"})
}
