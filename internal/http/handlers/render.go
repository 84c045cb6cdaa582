package handlers

import (
	"learnhub/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// render injects the cookie-derived login state every template needs.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["LoggedIn"] = c.Cookies(CookieAuthToken) != ""
	data["IsAdmin"] = c.Cookies(CookieUserRole) == domain.RoleAdmin
	return c.Render(tmpl, data)
}
