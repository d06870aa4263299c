package handlers

import (
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RequireRole пускає далі лише автентифікованого користувача з потрібною
// роллю; інакше — редірект на вхід, обробник не виконується.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := sessionUser(c)
		if !ok || u.Role != role {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// LoadUser кладе ідентичність у Locals на публічних сторінках,
// щоб layout показував меню за роллю.
func LoadUser(c *fiber.Ctx) error {
	if u, ok := sessionUser(c); ok {
		c.Locals("user", u)
	}
	return c.Next()
}

// mustUser — ідентичність після RequireRole.
func mustUser(c *fiber.Ctx) models.SessionUser {
	u, _ := c.Locals("user").(models.SessionUser)
	return u
}
