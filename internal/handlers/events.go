package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/D-a-sh-a/Gym/internal/models"
)

// Кожне бронювання на календарі займає фіксовану годину.
const eventDuration = 60 * time.Minute

const (
	eventColor     = "#2ECC71"
	eventTextColor = "#FFFFFF"
)

// newCalendarEvent збирає подію FullCalendar з рядка бронювання.
func newCalendarEvent(id int, start time.Time, title string, props models.EventProps) models.CalendarEvent {
	props.DateOnly = start.Format("2006-01-02")
	props.TimeOnly = start.Format("15:04")
	return models.CalendarEvent{
		ID:            id,
		Title:         title,
		Start:         start.Format(time.RFC3339),
		End:           start.Add(eventDuration).Format(time.RFC3339),
		Color:         eventColor,
		TextColor:     eventTextColor,
		ExtendedProps: props,
	}
}

// eventsJSON серіалізує події для вбудовування у шаблон.
// Порожній список — завжди "[]", а не "null".
func eventsJSON(events []models.CalendarEvent) string {
	if len(events) == 0 {
		return "[]"
	}
	b, err := json.Marshal(events)
	if err != nil {
		log.Printf("❌ events marshal: %v", err)
		return "[]"
	}
	return string(b)
}
