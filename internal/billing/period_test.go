package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePeriodYear(t *testing.T) {
	now := date(2024, time.March, 10)
	start, end := ComputePeriod("1 рік", nil, now)
	if !start.Equal(now) {
		t.Fatalf("start = %v, очікували %v", start, now)
	}
	want := date(2025, time.March, 10)
	if !end.Equal(want) {
		t.Fatalf("end = %v, очікували %v", end, want)
	}
}

func TestComputePeriodMonth(t *testing.T) {
	start, end := ComputePeriod("1 місяць", nil, date(2024, time.March, 10))
	if want := date(2024, time.April, 10); !end.Equal(want) {
		t.Fatalf("end = %v, очікували %v", end, want)
	}
	if want := date(2024, time.March, 10); !start.Equal(want) {
		t.Fatalf("start = %v, очікували %v", start, want)
	}
}

func TestComputePeriodMonthClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"31 січня у високосний рік", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"31 січня у звичайний рік", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"31 березня", date(2024, time.March, 31), date(2024, time.April, 30)},
		{"30 січня", date(2023, time.January, 30), date(2023, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, end := ComputePeriod("1 місяць", nil, tc.now)
			if !end.Equal(tc.want) {
				t.Fatalf("end = %v, очікували %v", end, tc.want)
			}
		})
	}
}

func TestComputePeriodFallback30Days(t *testing.T) {
	now := date(2024, time.March, 10)
	_, end := ComputePeriod("разове відвідування", nil, now)
	if want := date(2024, time.April, 9); !end.Equal(want) {
		t.Fatalf("end = %v, очікували %v", end, want)
	}
}

func TestComputePeriodStacksOnActiveSubscription(t *testing.T) {
	// чинний абонемент до 2024-03-15, продаж 2024-03-10:
	// новий стартує 2024-03-16 і діє до 2024-04-16
	activeEnd := date(2024, time.March, 15)
	start, end := ComputePeriod("1 місяць", &activeEnd, date(2024, time.March, 10))
	if want := date(2024, time.March, 16); !start.Equal(want) {
		t.Fatalf("start = %v, очікували %v", start, want)
	}
	if want := date(2024, time.April, 16); !end.Equal(want) {
		t.Fatalf("end = %v, очікували %v", end, want)
	}
}

func TestComputePeriodStackIgnoresPurchaseDate(t *testing.T) {
	// дата покупки не впливає на початок, поки є чинний абонемент
	activeEnd := date(2024, time.June, 1)
	for _, purchase := range []time.Time{date(2024, time.May, 1), date(2024, time.May, 30)} {
		start, _ := ComputePeriod("1 рік", &activeEnd, purchase)
		if want := date(2024, time.June, 2); !start.Equal(want) {
			t.Fatalf("покупка %v: start = %v, очікували %v", purchase, start, want)
		}
	}
}

func TestComputePeriodTokenMatchIsCaseInsensitive(t *testing.T) {
	now := date(2024, time.March, 10)
	_, end := ComputePeriod("Абонемент на РІК", nil, now)
	if want := date(2025, time.March, 10); !end.Equal(want) {
		t.Fatalf("end = %v, очікували %v", end, want)
	}
}

func TestComputePeriodStripsTimeOfDay(t *testing.T) {
	now := time.Date(2024, time.March, 10, 18, 45, 12, 0, time.UTC)
	start, _ := ComputePeriod("1 місяць", nil, now)
	if want := date(2024, time.March, 10); !start.Equal(want) {
		t.Fatalf("start = %v, очікували %v", start, want)
	}
}
