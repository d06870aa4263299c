package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/D-a-sh-a/Gym/internal/database"
	"github.com/D-a-sh-a/Gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

const maxPhotoSize = 5 * 1024 * 1024

// ManagerTrainers — сторінка адміністрування тренерів.
func ManagerTrainers(c *fiber.Ctx) error {
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
		return failPage(c, "Помилка завантаження тренерів", err)
	}
	defer rows.Close()

	var list []models.Trainer
	for rows.Next() {
		var t models.Trainer
		if err := rows.Scan(&t.ID, &t.FullName, &t.Phone, &t.Email, &t.Experience, &t.Description, &t.HasPhoto); err != nil {
			log.Printf("❌ scan trainer: %v", err)
			continue
		}
		list = append(list, t)
	}

	return render(c, "manager_trainers", fiber.Map{
		"Title":    "Тренери",
		"Trainers": list,
	})
}

// photoFromForm читає необов'язкове фото з multipart-форми в пам'ять.
// Відсутній файл — не помилка, повертається nil.
func photoFromForm(c *fiber.Ctx) ([]byte, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil, nil
	}
	if file.Size > maxPhotoSize {
		return nil, errors.New("розмір фото перевищує 5 МБ")
	}
	switch file.Header.Get("Content-Type") {
	case "image/jpeg", "image/png":
	default:
		return nil, errors.New("дозволені лише JPEG/PNG")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// ManagerCreateTrainer — провізіонування тренера: users + trainers однією
// транзакцією, пароль задає менеджер у формі.
func ManagerCreateTrainer(c *fiber.Ctx) error {
	type trainerForm struct {
		FullName    string `form:"full_name"`
		Email       string `form:"email"`
		Phone       string `form:"phone"`
		Experience  int    `form:"experience"`
		Description string `form:"description"`
		Password    string `form:"password"`
	}
	var f trainerForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}
	if f.FullName == "" || f.Email == "" || f.Password == "" {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", errors.New("порожні обов'язкові поля"))
	}

	photo, err := photoFromForm(c)
	if err != nil {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}

	hashed, err := hashPassword(f.Password)
	if err != nil {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}

	var userID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (login, password, role) VALUES ($1, $2, 'trainer')
		RETURNING id
	`, f.Email, hashed).Scan(&userID)
	if err == nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO trainers (id, full_name, phone, email, experience, description, photo)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, userID, f.FullName, f.Phone, f.Email, f.Experience, f.Description, photo)
	}
	if err != nil {
		_ = tx.Rollback()
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}
	if err := tx.Commit(); err != nil {
		return failPage(c, "Помилка створення тренера. Перевірте дані.", err)
	}

	return c.Redirect("/manager/trainers")
}

// ManagerUpdateTrainer редагує профіль тренера; фото і пароль міняються
// лише коли передані.
func ManagerUpdateTrainer(c *fiber.Ctx) error {
	type trainerForm struct {
		ID          int    `form:"id"`
		FullName    string `form:"full_name"`
		Email       string `form:"email"`
		Phone       string `form:"phone"`
		Experience  int    `form:"experience"`
		Description string `form:"description"`
		NewPassword string `form:"new_password"`
	}
	var f trainerForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	photo, err := photoFromForm(c)
	if err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	db := database.GetDB()
	ctx, cancel := withDBTimeout()
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE trainers
		SET full_name = $1, email = $2, phone = $3, experience = $4, description = $5
		WHERE id = $6
	`, f.FullName, f.Email, f.Phone, f.Experience, f.Description, f.ID)
	if err == nil && photo != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE trainers SET photo = $1 WHERE id = $2`, photo, f.ID)
	}
	if err == nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE users SET login = $1 WHERE id = $2`, f.Email, f.ID)
	}
	if err == nil && f.NewPassword != "" {
		var hashed string
		if hashed, err = hashPassword(f.NewPassword); err == nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE users SET password = $1 WHERE id = $2`, hashed, f.ID)
		}
	}
	if err != nil {
		_ = tx.Rollback()
		return failPage(c, "Помилка редагування", err)
	}
	if err := tx.Commit(); err != nil {
		return failPage(c, "Помилка редагування", err)
	}

	return c.Redirect("/manager/trainers")
}

// ManagerDeleteTrainer видаляє обліковий запис; профіль тренера йде каскадом.
func ManagerDeleteTrainer(c *fiber.Ctx) error {
	type deleteForm struct {
		ID int `form:"id"`
	}
	var f deleteForm
	if err := c.BodyParser(&f); err != nil {
		return failPage(c, "Помилка видалення тренера", err)
	}

	ctx, cancel := withDBTimeout()
	defer cancel()
	if _, err := database.GetDB().ExecContext(ctx,
		`DELETE FROM users WHERE id = $1`, f.ID); err != nil {
		return failPage(c, "Помилка видалення тренера", err)
	}
	return c.Redirect("/manager/trainers")
}
