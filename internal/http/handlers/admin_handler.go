package handlers

import (
	"learnhub/internal/domain"
	applog "learnhub/internal/log"
	"learnhub/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users *repos.UserRepo
}

// GET /admin — behind the route guard's admin rule
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	if h.Users == nil {
		return render(c, "admin", fiber.Map{"Users": []domain.PublicUser{}})
	}
	users, err := h.Users.List(100)
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	pub := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		pub = append(pub, users[i].Public())
	}
	return render(c, "admin", fiber.Map{"Users": pub})
}
