package handlers

import (
	applog "learnhub/internal/log"
	"learnhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	Content *services.ContentService
}

// GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{})
}

// GET /learn
func (h *PageHandler) Learn(c *fiber.Ctx) error {
	courses, err := h.Content.Courses()
	if err != nil {
		applog.Error(c, "learn.courses.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load courses"})
	}
	articles, err := h.Content.Articles()
	if err != nil {
		applog.Error(c, "learn.articles.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load articles"})
	}
	videos, err := h.Content.Videos()
	if err != nil {
		applog.Error(c, "learn.videos.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load videos"})
	}
	return render(c, "learn", fiber.Map{"Courses": courses, "Articles": articles, "Videos": videos})
}

// GET /practice?level=&category=
func (h *PageHandler) Practice(c *fiber.Ctx) error {
	level := c.Query("level")
	category := c.Query("category")
	exercises, err := h.Content.Exercises(level, category)
	if err != nil {
		applog.Error(c, "practice.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load exercises"})
	}
	return render(c, "practice", fiber.Map{"Exercises": exercises, "Level": level, "Category": category})
}

// GET /login
func (h *PageHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Redirect": c.Query("redirect")})
}

// GET /register
func (h *PageHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{})
}

// GET /reset-password
func (h *PageHandler) ResetForm(c *fiber.Ctx) error {
	return render(c, "reset", fiber.Map{})
}

// GET /account — behind the route guard
func (h *PageHandler) Account(c *fiber.Ctx) error {
	return render(c, "account", fiber.Map{})
}
