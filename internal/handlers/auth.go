package handlers

import (
	"database/sql"
	"log"

	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Login перевіряє логін/пароль і кладе ідентичність у сесію.
// Невдача рендериться назад у форму входу з локалізованим повідомленням.
func Login(c *fiber.Ctx) error {
	type loginForm struct {
		Login    string `form:"login"`
		Password string `form:"password"`
	}
	var f loginForm
	if err := c.BodyParser(&f); err != nil {
		return render(c, "login", fiber.Map{"Message": "Невірні дані форми"})
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	var u models.User
	var roleStr string
	err := db.QueryRowContext(ctx, `
		SELECT id, login, password, role FROM users WHERE login = $1
	`, f.Login).Scan(&u.ID, &u.Login, &u.Password, &roleStr)
	if err == sql.ErrNoRows {
		return render(c, "login", fiber.Map{"Message": "Користувача з таким логіном не знайдено"})
	}
	if err != nil {
		log.Printf("❌ login: %v", err)
		return render(c, "login", fiber.Map{"Message": "Помилка сервера"})
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(f.Password)) != nil {
		return render(c, "login", fiber.Map{"Message": "Невірний пароль"})
	}

	u.Role = models.ParseRole(roleStr)
	if err := saveSessionUser(c, models.SessionUser{ID: u.ID, Login: u.Login, Role: u.Role}); err != nil {
		log.Printf("❌ session save: %v", err)
		return render(c, "login", fiber.Map{"Message": "Помилка сервера"})
	}

	log.Printf("Користувач %s увійшов як %s", u.Login, u.Role)

	switch u.Role {
	case models.RoleManager:
		return c.Redirect("/manager/dashboard")
	case models.RoleTrainer:
		return c.Redirect("/trainer/dashboard")
	case models.RoleClient:
		return c.Redirect("/client/dashboard")
	default:
		return c.Redirect("/")
	}
}

func Logout(c *fiber.Ctx) error {
	destroySession(c)
	return c.Redirect("/")
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(b), err
}

// generateOneTimePassword — короткий одноразовий пароль для реєстрації та
// скидання. Надсилається поштою; зміну пароля система не форсує,
// лише нагадує у листі.
func generateOneTimePassword() string {
	return uuid.NewString()[:8]
}
