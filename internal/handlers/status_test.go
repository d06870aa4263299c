package handlers

import (
	"testing"
	"time"
)

func TestSubscriptionStatusNone(t *testing.T) {
	st := subscriptionStatus(nil, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	if st.IsActive || st.Class != "secondary" {
		t.Fatalf("st = %+v", st)
	}
}

func TestSubscriptionStatusExpired(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	st := subscriptionStatus(&end, today)
	if st.IsActive {
		t.Fatalf("закінчений абонемент активний: %+v", st)
	}
	if st.Text != "Немає активного абонементу (Закінчився)" {
		t.Fatalf("Text = %q", st.Text)
	}
}

func TestSubscriptionStatusExpiringSoon(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	cases := []time.Time{
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), // сьогодні
		time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), // рівно за тиждень
	}
	for _, end := range cases {
		st := subscriptionStatus(&end, today)
		if !st.IsActive || st.Class != "warning" {
			t.Fatalf("end %v: st = %+v", end, st)
		}
	}
}

func TestSubscriptionStatusActive(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)
	st := subscriptionStatus(&end, today)
	if !st.IsActive || st.Class != "success" {
		t.Fatalf("st = %+v", st)
	}
	if st.Text != "Діє до: 18.03.2024" {
		t.Fatalf("Text = %q", st.Text)
	}
}
