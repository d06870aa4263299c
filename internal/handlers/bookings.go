package handlers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

// errSlotTaken — слот тренера вже зайнятий на цей час.
var errSlotTaken = errors.New("слот уже зайнятий")

// parseStartTime збирає дату і час форми у позначку з точністю до хвилини.
func parseStartTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}

// hasBookingConflict — конфліктом вважається лише точний збіг часу початку
// в того самого тренера. excludeID виключає власний запис при редагуванні.
func hasBookingConflict(ctx context.Context, db *sql.DB, trainerID int, start time.Time, excludeID int) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE trainer_id = $1 AND start_time = $2 AND id <> $3
		)
	`, trainerID, start, excludeID).Scan(&exists)
	return exists, err
}

// insertBooking створює бронювання. Зайнятий слот повертається як
// errSlotTaken: і з попередньої перевірки, і з унікального індексу
// (trainer_id, start_time), який ловить паралельну вставку, що проскочила
// перевірку.
func insertBooking(ctx context.Context, db *sql.DB, clientID, trainerID, priceID int, start time.Time) error {
	taken, err := hasBookingConflict(ctx, db, trainerID, start, 0)
	if err != nil {
		return err
	}
	if taken {
		return errSlotTaken
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO bookings (client_id, trainer_id, price_id, start_time)
		VALUES ($1, $2, $3, $4)
	`, clientID, trainerID, priceID, start)
	if isUniqueViolation(err) {
		return errSlotTaken
	}
	return err
}

// moveBooking переносить бронювання на новий час з тою самою семантикою
// конфлікту, що й insertBooking.
func moveBooking(ctx context.Context, db *sql.DB, bookingID, trainerID int, start time.Time) error {
	taken, err := hasBookingConflict(ctx, db, trainerID, start, bookingID)
	if err != nil {
		return err
	}
	if taken {
		return errSlotTaken
	}
	_, err = db.ExecContext(ctx, `
		UPDATE bookings SET start_time = $1 WHERE id = $2
	`, start, bookingID)
	if isUniqueViolation(err) {
		return errSlotTaken
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
