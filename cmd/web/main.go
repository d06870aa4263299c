package main

import (
	"log"
	"time"

	"github.com/D-a-sh-a/Gym/internal/config"
	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/handlers"
	"github.com/D-a-sh-a/Gym/internal/mailer"
	"github.com/D-a-sh-a/Gym/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

func main() {
	// Завантаження конфігурації
	cfg := config.LoadConfig()

	// Ініціалізація бази даних і схеми
	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Помилка міграції БД: %v", err)
	}

	// Пошта: Resend або noop без ключа
	handlers.SetMailer(mailer.New(cfg.Mail.APIKey, cfg.Mail.From))

	// Ініціалізація шаблонів
	engine := html.New(cfg.Server.TemplatePath, ".html")

	// Створення застосунку Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "Gym",
		ViewsLayout: "layouts/base",
		BodyLimit:   10 * 1024 * 1024, // до 10 МБ на запит (фото тренерів)
	})

	// -------------------------------
	// Middleware: безпека і логіка
	// -------------------------------

	app.Use(recover.New())  // Перехоплює паніки, повертає 500 замість падіння
	app.Use(helmet.New())   // HTTP security-заголовки
	app.Use(compress.New()) // Стискає відповіді gzip/br
	app.Use(logger.New())   // Логи запитів
	app.Use(limiter.New(limiter.Config{
		Max:        120,         // 120 запитів
		Expiration: time.Minute, // за хвилину
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Забагато запитів. Спробуйте пізніше.")
		},
	}))
	app.Use(etag.New())

	// Ідентичність із сесії — для меню у шаблонах
	app.Use(handlers.LoadUser)

	// -------------------------------
	// Статика і маршрути
	// -------------------------------
	app.Static("/static", cfg.Server.StaticPath)

	setupRoutes(app)

	log.Printf("🚀 Сервер запущено на http://localhost%s", cfg.Server.Port)

	log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршрути застосунку
func setupRoutes(app *fiber.App) {
	// публічні сторінки
	app.Get("/", handlers.Index)
	app.Get("/login", handlers.LoginPage)
	app.Post("/auth/login", handlers.Login)
	app.Get("/auth/logout", handlers.Logout)
	app.Get("/trainers", handlers.TrainersPage)
	app.Get("/price", handlers.PricePage)
	app.Get("/trainer/image/:id", handlers.TrainerImage)

	// кабінет тренера
	trainer := app.Group("/trainer", handlers.RequireRole(models.RoleTrainer))
	trainer.Get("/dashboard", handlers.TrainerDashboard)
	trainer.Post("/add-booking", handlers.TrainerAddBooking)
	trainer.Post("/edit-booking", handlers.TrainerEditBooking)
	trainer.Post("/delete-booking", handlers.TrainerDeleteBooking)

	// кабінет клієнта
	client := app.Group("/client", handlers.RequireRole(models.RoleClient))
	client.Get("/dashboard", handlers.ClientDashboard)
	client.Get("/profile", handlers.ClientProfile)
	client.Post("/change-password", handlers.ClientChangePassword)

	// кабінет менеджера
	manager := app.Group("/manager", handlers.RequireRole(models.RoleManager))
	manager.Get("/dashboard", handlers.ManagerDashboard)
	manager.Post("/add-booking", handlers.ManagerAddBooking)
	manager.Post("/edit-booking", handlers.ManagerEditBooking)
	manager.Post("/delete-booking", handlers.ManagerDeleteBooking)
	manager.Get("/clients", handlers.ManagerClients)
	manager.Post("/register", handlers.RegisterClient)
	manager.Post("/sell", handlers.SellSubscription)
	manager.Post("/reset-password", handlers.ResetPassword)
	manager.Post("/edit-client", handlers.UpdateClientProfile)
	manager.Get("/trainers", handlers.ManagerTrainers)
	manager.Post("/trainers/add", handlers.ManagerCreateTrainer)
	manager.Post("/trainers/edit", handlers.ManagerUpdateTrainer)
	manager.Post("/trainers/delete", handlers.ManagerDeleteTrainer)
}
