package handlers

import (
	"time"

	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Сесії живуть годину, як і в старій версії кабінету.
var store = session.New(session.Config{
	Expiration:     time.Hour,
	KeyLookup:      "cookie:gym_session",
	CookieHTTPOnly: true,
})

func saveSessionUser(c *fiber.Ctx, u models.SessionUser) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", u.ID)
	sess.Set("user_login", u.Login)
	sess.Set("user_role", string(u.Role))
	return sess.Save()
}

// sessionUser повертає ідентичність із сесії; false — гість.
func sessionUser(c *fiber.Ctx) (models.SessionUser, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return models.SessionUser{}, false
	}
	id, ok := sess.Get("user_id").(int)
	if !ok || id <= 0 {
		return models.SessionUser{}, false
	}
	login, _ := sess.Get("user_login").(string)
	roleStr, _ := sess.Get("user_role").(string)
	role := models.ParseRole(roleStr)
	if role == models.RoleGuest {
		return models.SessionUser{}, false
	}
	return models.SessionUser{ID: id, Login: login, Role: role}, true
}

func destroySession(c *fiber.Ctx) {
	if sess, err := store.Get(c); err == nil {
		_ = sess.Destroy()
	}
}
