package handlers

import (
	"net/url"
	"strings"

	"learnhub/internal/domain"
	applog "learnhub/internal/log"

	"github.com/gofiber/fiber/v2"
)

// Cookie names the guard and the login handler share.
const (
	CookieAuthToken = "auth-token"
	CookieUserRole  = "user-role"

	// AuthTokenValue is the opaque marker set on login. The guard
	// trusts it at face value: there is no signature, so any client
	// that can set cookies can forge authentication. Known gap carried
	// over from the original design, on purpose.
	AuthTokenValue = "authenticated"
)

var (
	protectedPrefixes = []string{"/protected", "/account"}
	adminPrefixes     = []string{"/admin"}
)

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RouteGuard gates navigations on the two auth cookies. First matching
// rule wins; anything else passes through unchanged. No store access,
// constant work per request.
func RouteGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		token := c.Cookies(CookieAuthToken)
		role := c.Cookies(CookieUserRole)

		if hasPrefix(path, protectedPrefixes) && token == "" {
			return c.Redirect("/login?redirect=" + url.QueryEscape(path))
		}
		if hasPrefix(path, adminPrefixes) && role != domain.RoleAdmin {
			applog.Security(c, "guard.admin.denied", map[string]any{"role": role})
			return c.Redirect("/")
		}
		if (path == "/login" || path == "/register") && token != "" {
			return c.Redirect("/")
		}
		return c.Next()
	}
}
