package handlers

import (
	"fmt"
	"log"

	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// render додає поточну ідентичність до даних подання: шаблони показують
// меню за роллю (isManager/isTrainer/isClient у layout'і).
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u, ok := c.Locals("user").(models.SessionUser); ok {
		data["User"] = u
	}
	return c.Render(view, data)
}

// alertRedirect показує alert і повертає на сторінку — так кабінети
// повідомляють про бізнес-конфлікти (зайнятий слот, паролі не збігаються).
func alertRedirect(c *fiber.Ctx, message, location string) error {
	c.Type("html", "utf-8")
	return c.SendString(fmt.Sprintf(
		`<script>alert('%s');window.location.href='%s';</script>`, message, location))
}

// failPage логує помилку і віддає загальний текст без деталей.
func failPage(c *fiber.Ctx, publicMsg string, err error) error {
	if err != nil {
		log.Printf("❌ %s: %v", publicMsg, err)
	}
	return c.SendString(publicMsg)
}
