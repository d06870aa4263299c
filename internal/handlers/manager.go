package handlers

import (
	"database/sql"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/D-a-sh-a/Gym/internal/billing"
	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ManagerDashboard — календар обраного тренера. Без параметра trainer_id
// список подій порожній.
func ManagerDashboard(c *fiber.Ctx) error {
	db := database.GetDB()

	selectedTrainerID, _ := strconv.Atoi(c.Query("trainer_id"))
	var events []models.CalendarEvent
	if selectedTrainerID > 0 {
		ctx, cancel := withDBTimeout()
		rows, err := db.QueryContext(ctx, `
			SELECT b.id, b.start_time, c.full_name, t.full_name, p.title
			FROM bookings b
			JOIN clients c ON b.client_id = c.id
			JOIN trainers t ON b.trainer_id = t.id
			JOIN price_list p ON b.price_id = p.id
			WHERE b.trainer_id = $1
		`, selectedTrainerID)
		if err != nil {
			cancel()
			return failPage(c, "Помилка дашборда", err)
		}
		for rows.Next() {
			var id int
			var start time.Time
			var clientName, trainerName, service string
			if err := rows.Scan(&id, &start, &clientName, &trainerName, &service); err != nil {
				log.Printf("❌ scan booking: %v", err)
				continue
			}
			events = append(events, newCalendarEvent(id, start,
				clientName+"\n("+service+")",
				models.EventProps{Client: clientName, Trainer: trainerName, Service: service}))
		}
		rows.Close()
		cancel()
	}

	trainers, err := listTrainersForSelect(db)
	if err != nil {
		return failPage(c, "Помилка дашборда", err)
	}
	clients, err := listClientsForSelect(db)
	if err != nil {
		return failPage(c, "Помилка дашборда", err)
	}
	prices, err := listPrices(db)
	if err != nil {
		return failPage(c, "Помилка дашборда", err)
	}

	return render(c, "manager_dashboard", fiber.Map{
		"Title":             "Кабінет менеджера",
		"EventsJson":        eventsJSON(events),
		"TrainersList":      trainers,
		"ClientsList":       clients,
		"PricesList":        prices,
		"SelectedTrainerID": selectedTrainerID,
	})
}

// managerClientRow — рядок списку клієнтів зі станом абонемента.
type managerClientRow struct {
	models.Client
	SubTitle string
	Status   subStatus
}

// ManagerClients — список клієнтів з пошуком і станом останнього абонемента,
// плюс позиції прайса, придатні для продажу.
func ManagerClients(c *fiber.Ctx) error {
	db := database.GetDB()
	search := strings.TrimSpace(c.Query("search"))

	query := `
		SELECT c.id, c.full_name, c.phone, c.email, c.birth_date,
		       (SELECT p.title FROM subscriptions s
		        JOIN price_list p ON s.price_id = p.id
		        WHERE s.client_id = c.id ORDER BY s.end_date DESC LIMIT 1),
		       (SELECT s.end_date FROM subscriptions s
		        WHERE s.client_id = c.id ORDER BY s.end_date DESC LIMIT 1)
		FROM clients c
	`
	args := []any{}
	if search != "" {
		query += ` WHERE c.full_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY c.full_name ASC`

	ctx, cancel := withDBTimeout()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return failPage(c, "Помилка завантаження клієнтів", err)
	}

	today := time.Now()
	var clients []managerClientRow
	for rows.Next() {
		var row managerClientRow
		var birth sql.NullTime
		var subTitle sql.NullString
		var subEnd sql.NullTime
		if err := rows.Scan(&row.ID, &row.FullName, &row.Phone, &row.Email, &birth, &subTitle, &subEnd); err != nil {
			log.Printf("❌ scan client: %v", err)
			continue
		}
		row.BirthDate = birth.Time

		var end *time.Time
		if subEnd.Valid {
			end = &subEnd.Time
		}
		row.Status = subscriptionStatus(end, today)
		if row.Status.IsActive {
			row.SubTitle = subTitle.String
		}
		clients = append(clients, row)
	}
	rows.Close()
	cancel()

	prices, err := sellablePrices(db)
	if err != nil {
		return failPage(c, "Помилка завантаження клієнтів", err)
	}

	return render(c, "manager_clients", fiber.Map{
		"Title":       "Клієнти",
		"Clients":     clients,
		"Prices":      prices,
		"SearchQuery": search,
	})
}

// sellablePrices — позиції прайса, що продаються як абонементи.
func sellablePrices(db *sql.DB) ([]models.PriceItem, error) {
	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, duration, price FROM price_list
		WHERE title ILIKE '%абонемент%'
		   OR duration ILIKE '%місяць%'
		   OR duration ILIKE '%рік%'
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PriceItem
	for rows.Next() {
		var p models.PriceItem
		if err := rows.Scan(&p.ID, &p.Title, &p.Duration, &p.Price); err == nil {
			out = append(out, p)
		}
	}
	return out, rows.Err()
}

// SellSubscription продає абонемент: новий період доклеюється до чинного
// покриття (див. billing.ComputePeriod).
func SellSubscription(c *fiber.Ctx) error {
	type sellForm struct {
		ClientID int `form:"client_id"`
		PriceID  int `form:"price_id"`
	}
	var f sellForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка при продажі абонемента", err)
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	var duration string
	if err := db.QueryRowContext(ctx,
		`SELECT duration FROM price_list WHERE id = $1`, f.PriceID).Scan(&duration); err != nil {
		return failPage(c, "Помилка при продажі абонемента", err)
	}

	var activeEnd *time.Time
	var end time.Time
	err := db.QueryRowContext(ctx, `
		SELECT end_date FROM subscriptions
		WHERE client_id = $1 AND end_date >= CURRENT_DATE
		ORDER BY end_date DESC
		LIMIT 1
	`, f.ClientID).Scan(&end)
	switch {
	case err == nil:
		activeEnd = &end
	case err != sql.ErrNoRows:
		return failPage(c, "Помилка при продажі абонемента", err)
	}

	startDate, endDate := billing.ComputePeriod(duration, activeEnd, time.Now())

	if _, err := db.ExecContext(ctx, `
		INSERT INTO subscriptions (client_id, price_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
	`, f.ClientID, f.PriceID, startDate, endDate); err != nil {
		return failPage(c, "Помилка при продажі абонемента", err)
	}

	return c.Redirect("/manager/clients")
}

// RegisterClient — провізіонування клієнта: users + clients однією
// транзакцією, потім лист з одноразовим паролем.
func RegisterClient(c *fiber.Ctx) error {
	type registerForm struct {
		FullName  string `form:"full_name"`
		Email     string `form:"email"`
		Phone     string `form:"phone"`
		BirthDate string `form:"birth_date"`
	}
	var f registerForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка реєстрації.", err)
	}
	if f.FullName == "" || f.Email == "" {
		return failPage(c, "Помилка реєстрації.", errors.New("порожні обов'язкові поля"))
	}

	rawPassword := generateOneTimePassword()
	hashed, err := hashPassword(rawPassword)
	if err != nil {
		return failPage(c, "Помилка реєстрації.", err)
	}

	var birth any
	if f.BirthDate != "" {
		d, err := time.Parse("2006-01-02", f.BirthDate)
		if err != nil {
			return failPage(c, "Помилка реєстрації.", err)
		}
		birth = d
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return failPage(c, "Помилка реєстрації.", err)
	}

	var userID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (login, password, role) VALUES ($1, $2, 'client')
		RETURNING id
	`, f.Email, hashed).Scan(&userID)
	if err == nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO clients (id, full_name, phone, email, birth_date)
			VALUES ($1, $2, $3, $4, $5)
		`, userID, f.FullName, f.Phone, f.Email, birth)
	}
	if err != nil {
		_ = tx.Rollback()
		return failPage(c, "Помилка реєстрації.", err)
	}
	if err := tx.Commit(); err != nil {
		return failPage(c, "Помилка реєстрації.", err)
	}

	sendMailAsync(f.Email, "Реєстрація в GYM", registrationMailBody(f.Email, rawPassword))
	return c.Redirect("/manager/clients")
}

// ResetPassword генерує новий одноразовий пароль і надсилає його клієнту.
func ResetPassword(c *fiber.Ctx) error {
	type resetForm struct {
		ClientID    int    `form:"client_id"`
		ClientEmail string `form:"client_email"`
	}
	var f resetForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка скидання пароля", err)
	}

	newPass := generateOneTimePassword()
	hashed, err := hashPassword(newPass)
	if err != nil {
		return failPage(c, "Помилка скидання пароля", err)
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	if _, err := database.GetDB().ExecContext(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, hashed, f.ClientID); err != nil {
		return failPage(c, "Помилка скидання пароля", err)
	}

	sendMailAsync(f.ClientEmail, "Скидання пароля", resetMailBody(newPass))
	return c.Redirect("/manager/clients")
}

// UpdateClientProfile редагує профіль клієнта; логін у users тримаємо
// синхронним з email профілю.
func UpdateClientProfile(c *fiber.Ctx) error {
	type editForm struct {
		ID       int    `form:"id"`
		FullName string `form:"full_name"`
		Phone    string `form:"phone"`
		Email    string `form:"email"`
	}
	var f editForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка редагування клієнта", err)
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	if _, err := db.ExecContext(ctx, `
		UPDATE clients SET full_name = $1, phone = $2, email = $3 WHERE id = $4
	`, f.FullName, f.Phone, f.Email, f.ID); err != nil {
		return failPage(c, "Помилка редагування клієнта", err)
	}
	if _, err := db.ExecContext(ctx,
		`UPDATE users SET login = $1 WHERE id = $2`, f.Email, f.ID); err != nil {
		return failPage(c, "Помилка редагування клієнта", err)
	}

	return c.Redirect("/manager/clients")
}

// ManagerAddBooking — запис клієнта до обраного тренера.
func ManagerAddBooking(c *fiber.Ctx) error {
	type bookingForm struct {
		TrainerID int    `form:"trainer_id"`
		ClientID  int    `form:"client_id"`
		PriceID   int    `form:"price_id"`
		Date      string `form:"start_date"`
		Time      string `form:"start_time"`
	}
	var f bookingForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка при створенні запису", err)
	}

	start, err := parseStartTime(f.Date, f.Time)
	if err != nil {
		return alertRedirect(c, "Невірні дата або час", "/manager/dashboard")
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	err = insertBooking(ctx, database.GetDB(), f.ClientID, f.TrainerID, f.PriceID, start)
	if errors.Is(err, errSlotTaken) {
		return alertRedirect(c, "Зайнято!", "/manager/dashboard")
	}
	if err != nil {
		return failPage(c, "Помилка при створенні запису", err)
	}
	return c.Redirect("/manager/dashboard")
}

// ManagerEditBooking переносить бронювання; тренер визначається з самого
// запису, конфлікт перевіряється без урахування цього запису.
func ManagerEditBooking(c *fiber.Ctx) error {
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
		return alertRedirect(c, "Невірні дата або час", "/manager/dashboard")
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	var trainerID int
	err = db.QueryRowContext(ctx,
		`SELECT trainer_id FROM bookings WHERE id = $1`, f.BookingID).Scan(&trainerID)
	if err == sql.ErrNoRows {
		return alertRedirect(c, "Запис не знайдено", "/manager/dashboard")
	}
	if err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	err = moveBooking(ctx, db, f.BookingID, trainerID, start)
	if errors.Is(err, errSlotTaken) {
		return alertRedirect(c, "Зайнято!", "/manager/dashboard")
	}
	if err != nil {
		return failPage(c, "Помилка редагування", err)
	}
	return c.Redirect("/manager/dashboard")
}

func ManagerDeleteBooking(c *fiber.Ctx) error {
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
	return c.Redirect("/manager/dashboard")
}
