package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

func Index(c *fiber.Ctx) error {
	return render(c, "index", fiber.Map{"Title": "GYM - Головна"})
}

func LoginPage(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Вхід"})
}

// TrainersPage — публічний список тренерів.
func TrainersPage(c *fiber.Ctx) error {
	db := database.GetDB()

	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `
		SELECT id, full_name, phone, email, experience, description,
		       photo IS NOT NULL
		FROM trainers
		ORDER BY full_name
	`)
	if err != nil {
		return failPage(c, "Помилка при завантаженні тренерів", err)
	}
	defer rows.Close()

	var list []models.Trainer
	for rows.Next() {
		var t models.Trainer
		if err := rows.Scan(&t.ID, &t.FullName, &t.Phone, &t.Email, &t.Experience, &t.Description, &t.HasPhoto); err != nil {
			continue
		}
		list = append(list, t)
	}

	return render(c, "trainers", fiber.Map{
		"Title":        "Наші Тренери",
		"TrainersList": list,
	})
}

// PricePage — публічний прайс-лист.
func PricePage(c *fiber.Ctx) error {
	db := database.GetDB()
	prices, err := listPrices(db)
	if err != nil {
		return failPage(c, "Помилка при завантаженні цін", err)
	}
	return render(c, "price", fiber.Map{
		"Title":     "Прайс-лист",
		"PriceList": prices,
	})
}

// TrainerImage віддає фото тренера з BYTEA-колонки або 404.
func TrainerImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	var photo []byte
	err = db.QueryRowContext(ctx, `SELECT photo FROM trainers WHERE id = $1`, id).Scan(&photo)
	if err == sql.ErrNoRows || (err == nil && len(photo) == 0) {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error")
	}

	c.Set("Content-Type", http.DetectContentType(photo))
	return c.Send(photo)
}
