package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// TrainerDashboard — розклад тренера: власні бронювання як календарні події
// плюс список клієнтів і фіксована послуга для форми запису.
func TrainerDashboard(c *fiber.Ctx) error {
	u := mustUser(c)
	db := database.GetDB()

	ctx, cancel := withDBTimeout()
	rows, err := db.QueryContext(ctx, `
		SELECT b.id, b.start_time, c.full_name, p.title
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		JOIN price_list p ON b.price_id = p.id
		WHERE b.trainer_id = $1
	`, u.ID)
	if err != nil {
		cancel()
		return failPage(c, "Помилка при завантаженні розкладу", err)
	}

	var events []models.CalendarEvent
	for rows.Next() {
		var id int
		var start time.Time
		var clientName, service string
		if err := rows.Scan(&id, &start, &clientName, &service); err != nil {
			log.Printf("❌ scan booking: %v", err)
			continue
		}
		events = append(events, newCalendarEvent(id, start,
			clientName+"\n("+service+")",
			models.EventProps{Client: clientName, Service: service}))
	}
	rows.Close()
	cancel()

	clients, err := listClientsForSelect(db)
	if err != nil {
		return failPage(c, "Помилка при завантаженні розкладу", err)
	}

	return render(c, "trainer_dashboard", fiber.Map{
		"Title":        "Кабінет тренера",
		"EventsJson":   eventsJSON(events),
		"ClientsList":  clients,
		"FixedService": personalTrainingService(db),
	})
}

// personalTrainingService — фіксована послуга «Персональне тренування» для
// форми запису; якщо в прайсі її немає, повертається запасна позиція.
func personalTrainingService(db *sql.DB) selectItem {
	ctx, cancel := withDBTimeout()
	defer cancel()

	var it selectItem
	err := db.QueryRowContext(ctx, `
		SELECT id, title FROM price_list WHERE title ILIKE '%Персональне%' LIMIT 1
	`).Scan(&it.ID, &it.Name)
	if err != nil {
		return selectItem{ID: 1, Name: "Тренування"}
	}
	return it
}

func TrainerAddBooking(c *fiber.Ctx) error {
	u := mustUser(c)

	type bookingForm struct {
		ClientID int    `form:"client_id"`
		Date     string `form:"start_date"`
		Time     string `form:"start_time"`
		PriceID  int    `form:"price_id"`
	}
	var f bookingForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка при створенні запису", err)
	}

	start, err := parseStartTime(f.Date, f.Time)
	if err != nil {
		return alertRedirect(c, "Невірні дата або час", "/trainer/dashboard")
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	err = insertBooking(ctx, database.GetDB(), f.ClientID, u.ID, f.PriceID, start)
	if errors.Is(err, errSlotTaken) {
		return alertRedirect(c,
			fmt.Sprintf("⚠️ ПОМИЛКА: Час %s на дату %s вже зайнятий!", f.Time, f.Date),
			"/trainer/dashboard")
	}
	if err != nil {
		return failPage(c, "Помилка при створенні запису", err)
	}
	return c.Redirect("/trainer/dashboard")
}

func TrainerEditBooking(c *fiber.Ctx) error {
	u := mustUser(c)

	type editForm struct {
		BookingID int    `form:"booking_id"`
		NewDate   string `form:"new_date"`
		NewTime   string `form:"new_time"`
	}
	var f editForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	start, err := parseStartTime(f.NewDate, f.NewTime)
	if err != nil {
		return alertRedirect(c, "Невірні дата або час", "/trainer/dashboard")
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	err = moveBooking(ctx, database.GetDB(), f.BookingID, u.ID, start)
	if errors.Is(err, errSlotTaken) {
		return alertRedirect(c,
			fmt.Sprintf("⚠️ ПОМИЛКА: На час %s (%s) вже є інший запис! Оберіть інший.", f.NewTime, f.NewDate),
			"/trainer/dashboard")
	}
	if err != nil {
		return failPage(c, "Помилка редагування", err)
	}
	return c.Redirect("/trainer/dashboard")
}

func TrainerDeleteBooking(c *fiber.Ctx) error {
	type deleteForm struct {
		BookingID int `form:"booking_id"`
	}
	var f deleteForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка видалення", err)
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	if _, err := database.GetDB().ExecContext(ctx,
		`DELETE FROM bookings WHERE id = $1`, f.BookingID); err != nil {
		return failPage(c, "Помилка видалення", err)
	}
	return c.Redirect("/trainer/dashboard")
}
