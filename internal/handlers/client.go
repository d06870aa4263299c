package handlers

import (
	"database/sql"
	"log"
	"time"

	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ClientDashboard — бронювання клієнта як календарні події.
func ClientDashboard(c *fiber.Ctx) error {
	u := mustUser(c)
	db := database.GetDB()

	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `
		SELECT b.id, b.start_time, t.full_name, p.title
		FROM bookings b
		JOIN trainers t ON b.trainer_id = t.id
		JOIN price_list p ON b.price_id = p.id
		WHERE b.client_id = $1
	`, u.ID)
	if err != nil {
		return failPage(c, "Помилка при завантаженні кабінету", err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var id int
		var start time.Time
		var trainerName, service string
		if err := rows.Scan(&id, &start, &trainerName, &service); err != nil {
			log.Printf("❌ scan booking: %v", err)
			continue
		}
		events = append(events, newCalendarEvent(id, start,
			trainerName+"\n("+service+")",
			models.EventProps{Trainer: trainerName, Service: service}))
	}

	return render(c, "client_dashboard", fiber.Map{
		"Title":      "Мій кабінет",
		"EventsJson": eventsJSON(events),
	})
}

// ClientProfile — профіль та чинний абонемент (якщо є).
func ClientProfile(c *fiber.Ctx) error {
	u := mustUser(c)
	db := database.GetDB()

	ctx, cancel := withDBTimeout()
	defer cancel()

	var fullName, email string
	err := db.QueryRowContext(ctx,
		`SELECT full_name, email FROM clients WHERE id = $1`, u.ID).Scan(&fullName, &email)
	if err != nil {
		return failPage(c, "Помилка завантаження профілю", err)
	}

	data := fiber.Map{
		"Title": "Мій профіль",
		"ClientInfo": fiber.Map{
			"FullName": fullName,
			"Email":    email,
		},
	}

	var title string
	var endDate time.Time
	err = db.QueryRowContext(ctx, `
		SELECT p.title, s.end_date
		FROM subscriptions s
		JOIN price_list p ON s.price_id = p.id
		WHERE s.client_id = $1 AND s.end_date >= CURRENT_DATE
		ORDER BY s.end_date DESC
		LIMIT 1
	`, u.ID).Scan(&title, &endDate)
	switch {
	case err == nil:
		data["Subscription"] = fiber.Map{
			"Title": title,
			"Date":  endDate.Format("02.01.2006"),
		}
	case err != sql.ErrNoRows:
		return failPage(c, "Помилка завантаження профілю", err)
	}

	return render(c, "client_profile", data)
}

// ClientChangePassword міняє пароль поточного користувача.
func ClientChangePassword(c *fiber.Ctx) error {
	u := mustUser(c)

	type passwordForm struct {
		NewPassword     string `form:"new_password"`
		ConfirmPassword string `form:"confirm_password"`
	}
	var f passwordForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка зміни пароля", err)
	}
	if f.NewPassword == "" || f.NewPassword != f.ConfirmPassword {
		return alertRedirect(c, "❌ Паролі не співпадають!", "/client/profile")
	}

	hashed, err := hashPassword(f.NewPassword)
	if err != nil {
		return failPage(c, "Помилка зміни пароля", err)
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	if _, err := database.GetDB().ExecContext(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, hashed, u.ID); err != nil {
		return failPage(c, "Помилка зміни пароля", err)
	}

	return alertRedirect(c, "✅ Пароль успішно змінено!", "/client/profile")
}
