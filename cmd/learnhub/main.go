package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"learnhub/internal/config"
	"learnhub/internal/http/handlers"
	applog "learnhub/internal/log"
	"learnhub/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// Without DATABASE_URL the server still serves pages; auth APIs
	// answer 500 "server misconfigured".
	var db *sqlx.DB
	if cfg.DBDSN == "" {
		log.Println("[warn] DATABASE_URL not set; auth endpoints disabled")
	} else {
		var err error
		db, err = repos.OpenDB(cfg.DBDSN)
		if err != nil {
			log.Fatal(err)
		}
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(handlers.RouteGuard())

	// ---------- Handlers ----------
	deps := handlers.NewDeps(db)

	app.Static("/static", "./web/static")

	// Pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/learn", deps.PageHandler.Learn)
	app.Get("/practice", deps.PageHandler.Practice)
	app.Get("/login", deps.PageHandler.LoginForm)
	app.Get("/register", deps.PageHandler.RegisterForm)
	app.Get("/reset-password", deps.PageHandler.ResetForm)
	app.Get("/account", deps.PageHandler.Account)
	app.Get("/admin", deps.AdminHandler.Dashboard)

	// Auth API
	api := app.Group("/api")
	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", deps.AuthHandler.Login)
	api.Post("/reset-password", deps.AuthHandler.ResetPassword)
	api.Post("/logout", deps.AuthHandler.Logout)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
