package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"learnhub/internal/http/handlers"
	"learnhub/internal/repos"
)

// newTestApp builds the app the way main does, against an in-memory
// store. A nil db exercises the misconfigured path.
func newTestApp(t *testing.T, withDB bool) *fiber.App {
	t.Helper()

	var db *sqlx.DB
	if withDB {
		var err error
		db, err = repos.OpenDB(":memory:")
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(handlers.RouteGuard())

	deps := handlers.NewDeps(db)

	app.Get("/", deps.PageHandler.Home)
	app.Get("/learn", deps.PageHandler.Learn)
	app.Get("/practice", deps.PageHandler.Practice)
	app.Get("/login", deps.PageHandler.LoginForm)
	app.Get("/register", deps.PageHandler.RegisterForm)
	app.Get("/reset-password", deps.PageHandler.ResetForm)
	app.Get("/account", deps.PageHandler.Account)
	app.Get("/admin", deps.AdminHandler.Dashboard)

	api := app.Group("/api")
	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", deps.AuthHandler.Login)
	api.Post("/reset-password", deps.AuthHandler.ResetPassword)
	api.Post("/logout", deps.AuthHandler.Logout)

	return app
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
