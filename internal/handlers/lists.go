package handlers

import (
	"database/sql"

	"github.com/D-a-sh-a/Gym/internal/models"
)

// selectItem — пара для випадаючих списків на формах.
type selectItem struct {
	ID   int
	Name string
}

func listClientsForSelect(db *sql.DB) ([]selectItem, error) {
	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `SELECT id, full_name FROM clients ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []selectItem
	for rows.Next() {
		var it selectItem
		if err := rows.Scan(&it.ID, &it.Name); err == nil {
			out = append(out, it)
		}
	}
	return out, rows.Err()
}

func listTrainersForSelect(db *sql.DB) ([]selectItem, error) {
	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `SELECT id, full_name FROM trainers ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []selectItem
	for rows.Next() {
		var it selectItem
		if err := rows.Scan(&it.ID, &it.Name); err == nil {
			out = append(out, it)
		}
	}
	return out, rows.Err()
}

func listPrices(db *sql.DB) ([]models.PriceItem, error) {
	ctx, cancel := withDBTimeout()
	defer cancel()
	rows, err := db.QueryContext(ctx, `SELECT id, title, duration, price FROM price_list ORDER BY id`)
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
