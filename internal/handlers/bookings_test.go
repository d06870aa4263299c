package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestParseStartTime(t *testing.T) {
	got, err := parseStartTime("2024-04-01", "10:00")
	if err != nil {
		t.Fatalf("parseStartTime: %v", err)
	}
	if got.Year() != 2024 || got.Hour() != 10 || got.Minute() != 0 {
		t.Fatalf("got = %v", got)
	}
}

func TestParseStartTimeRejectsGarbage(t *testing.T) {
	for _, tc := range [][2]string{
		{"", ""},
		{"2024-04-01", ""},
		{"01.04.2024", "10:00"},
		{"2024-04-01", "10:00:30"},
	} {
		if _, err := parseStartTime(tc[0], tc[1]); err == nil {
			t.Fatalf("дата %q час %q: очікували помилку", tc[0], tc[1])
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("порушення унікальності не розпізнано")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})) {
		t.Fatal("загорнуте порушення унікальності не розпізнано")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("порушення FK прийнято за унікальність")
	}
	if isUniqueViolation(errors.New("щось інше")) {
		t.Fatal("довільна помилка прийнята за унікальність")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil прийнято за помилку")
	}
}
