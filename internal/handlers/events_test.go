package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/D-a-sh-a/Gym/internal/models"
)

func TestNewCalendarEventFixedHour(t *testing.T) {
	start := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	ev := newCalendarEvent(12, start, "Іван Петренко\n(Персональне тренування)",
		models.EventProps{Client: "Іван Петренко", Service: "Персональне тренування"})

	if ev.ID != 12 {
		t.Fatalf("ID = %d", ev.ID)
	}
	if ev.Start != "2024-04-01T10:00:00Z" {
		t.Fatalf("Start = %q", ev.Start)
	}
	if ev.End != "2024-04-01T11:00:00Z" {
		t.Fatalf("End = %q, подія має тривати рівно годину", ev.End)
	}
	if ev.ExtendedProps.DateOnly != "2024-04-01" {
		t.Fatalf("DateOnly = %q", ev.ExtendedProps.DateOnly)
	}
	if ev.ExtendedProps.TimeOnly != "10:00" {
		t.Fatalf("TimeOnly = %q", ev.ExtendedProps.TimeOnly)
	}
	if ev.Color != "#2ECC71" || ev.TextColor != "#FFFFFF" {
		t.Fatalf("кольори = %q/%q", ev.Color, ev.TextColor)
	}
}

func TestEventsJSONEmptyIsArray(t *testing.T) {
	if got := eventsJSON(nil); got != "[]" {
		t.Fatalf("eventsJSON(nil) = %q, очікували []", got)
	}
}

func TestEventsJSONRoundTrip(t *testing.T) {
	start := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		newCalendarEvent(1, start, "A\n(S)", models.EventProps{Trainer: "A", Service: "S"}),
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(eventsJSON(events)), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("len = %d", len(decoded))
	}
	props, ok := decoded[0]["extendedProps"].(map[string]any)
	if !ok {
		t.Fatal("немає extendedProps")
	}
	if props["trainer"] != "A" || props["service"] != "S" {
		t.Fatalf("props = %v", props)
	}
	if _, hasClient := props["client"]; hasClient {
		t.Fatal("порожній client не повинен серіалізуватись")
	}
}
