package models

// CalendarEvent — подія для FullCalendar на дашбордах.
type CalendarEvent struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Start         string     `json:"start"` // RFC3339
	End           string     `json:"end"`
	Color         string     `json:"color"`
	TextColor     string     `json:"textColor"`
	ExtendedProps EventProps `json:"extendedProps"`
}

// EventProps — додаткові поля події: підписи учасників та розібрані дата/час
// для форми редагування.
type EventProps struct {
	Client   string `json:"client,omitempty"`
	Trainer  string `json:"trainer,omitempty"`
	Service  string `json:"service"`
	DateOnly string `json:"dateOnly"`
	TimeOnly string `json:"timeOnly"`
}
