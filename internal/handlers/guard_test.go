package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// loginAs кладе ідентичність у сесію через тестовий маршрут
// і повертає значення cookie для наступних запитів.
func loginAs(t *testing.T, app *fiber.App, u models.SessionUser) *http.Cookie {
	t.Helper()
	app.Post("/test-login", func(c *fiber.Ctx) error {
		if err := saveSessionUser(c, u); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test-login", nil))
	if err != nil {
		t.Fatalf("test-login: %v", err)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "gym_session" {
			return ck
		}
	}
	t.Fatal("cookie сесії не встановлено")
	return nil
}

func TestRequireRoleRedirectsGuest(t *testing.T) {
	app := fiber.New()
	called := false
	app.Get("/manager/dashboard", RequireRole(models.RoleManager), func(c *fiber.Ctx) error {
		called = true
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manager/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("статус = %d, очікували 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, очікували /login", loc)
	}
	if called {
		t.Fatal("обробник виконався без сесії")
	}
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	app := fiber.New()
	called := false
	app.Post("/manager/sell", RequireRole(models.RoleManager), func(c *fiber.Ctx) error {
		called = true
		return c.SendString("ok")
	})

	ck := loginAs(t, app, models.SessionUser{ID: 7, Login: "client@gym.ua", Role: models.RoleClient})

	req := httptest.NewRequest(http.MethodPost, "/manager/sell", nil)
	req.AddCookie(ck)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("статус = %d, очікували 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, очікували /login", loc)
	}
	if called {
		t.Fatal("мутація виконалась із чужою роллю")
	}
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	app := fiber.New()
	var seen models.SessionUser
	app.Get("/trainer/dashboard", RequireRole(models.RoleTrainer), func(c *fiber.Ctx) error {
		seen = mustUser(c)
		return c.SendString("ok")
	})

	ck := loginAs(t, app, models.SessionUser{ID: 3, Login: "trainer@gym.ua", Role: models.RoleTrainer})

	req := httptest.NewRequest(http.MethodGet, "/trainer/dashboard", nil)
	req.AddCookie(ck)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("статус = %d, очікували 200", resp.StatusCode)
	}
	if seen.ID != 3 || seen.Role != models.RoleTrainer {
		t.Fatalf("ідентичність у Locals = %+v", seen)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	app := fiber.New()
	app.Get("/auth/logout", Logout)
	app.Get("/client/profile", RequireRole(models.RoleClient), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	ck := loginAs(t, app, models.SessionUser{ID: 5, Login: "c@gym.ua", Role: models.RoleClient})

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(ck)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("logout: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/client/profile", nil)
	req.AddCookie(ck)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("після виходу статус = %d, очікували 302", resp.StatusCode)
	}
}
