package billing

import (
	"strings"
	"time"
)

// Токени тривалості у довіднику послуг — вільний текст,
// шукаємо підрядок без урахування регістру.
const (
	tokenYear  = "рік"
	tokenMonth = "місяць"
)

// Без розпізнаного токена абонемент діє 30 днів.
const fallbackDays = 30

// ComputePeriod рахує період нового абонемента.
//
// Початок — день після кінця чинного абонемента (activeEnd), якщо він є,
// інакше сьогодні: продовження «доклеюється» до поточного покриття,
// а не стартує з дати покупки.
//
// Кінець: "рік" → +1 календарний рік; "місяць" → +1 календарний місяць
// з притисканням до кінця місяця (31 січня → останній день лютого);
// інакше +30 днів.
func ComputePeriod(duration string, activeEnd *time.Time, now time.Time) (start, end time.Time) {
	start = dateOnly(now)
	if activeEnd != nil {
		start = dateOnly(*activeEnd).AddDate(0, 0, 1)
	}

	d := strings.ToLower(duration)
	switch {
	case strings.Contains(d, tokenYear):
		end = start.AddDate(1, 0, 0)
	case strings.Contains(d, tokenMonth):
		end = start.AddDate(0, 1, 0)
		if end.Day() != start.Day() {
			// AddDate переніс день у наступний місяць — притискаємо
			// до останнього дня цільового (день 0 = кінець попереднього)
			end = time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, end.Location())
		}
	default:
		end = start.AddDate(0, 0, fallbackDays)
	}
	return start, end
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
