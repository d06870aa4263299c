package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migrate створює схему, якщо її ще немає.
// Унікальний індекс (trainer_id, start_time) закриває гонку
// «перевірив-вставив» при паралельному бронюванні одного слота.
func Migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('manager', 'trainer', 'client'))
	);

	CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		birth_date DATE
	);

	CREATE TABLE IF NOT EXISTS trainers (
		id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		experience INTEGER NOT NULL DEFAULT 0,
		description TEXT,
		photo BYTEA
	);

	CREATE TABLE IF NOT EXISTS price_list (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		duration TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		trainer_id INTEGER NOT NULL REFERENCES trainers(id) ON DELETE CASCADE,
		price_id INTEGER NOT NULL REFERENCES price_list(id),
		start_time TIMESTAMP NOT NULL,
		UNIQUE (trainer_id, start_time)
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		price_id INTEGER NOT NULL REFERENCES price_list(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("помилка створення схеми: %w", err)
	}

	if err := seedPriceList(db); err != nil {
		return err
	}

	log.Println("Схема БД готова")
	return nil
}

// seedPriceList наповнює довідник послуг, якщо він порожній.
func seedPriceList(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM price_list`).Scan(&count); err != nil {
		return fmt.Errorf("помилка перевірки price_list: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := []struct {
		title    string
		duration string
		price    float64
	}{
		{"Абонемент на місяць", "1 місяць", 900},
		{"Абонемент на рік", "1 рік", 8500},
		{"Персональне тренування", "1 година", 350},
		{"Разове відвідування", "1 день", 150},
	}
	for _, it := range items {
		if _, err := db.Exec(
			`INSERT INTO price_list (title, duration, price) VALUES ($1, $2, $3)`,
			it.title, it.duration, it.price,
		); err != nil {
			return fmt.Errorf("помилка наповнення price_list: %w", err)
		}
	}
	log.Printf("Прайс-лист наповнено: %d позицій", len(items))
	return nil
}
