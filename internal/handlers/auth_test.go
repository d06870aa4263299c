package handlers

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateOneTimePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p := generateOneTimePassword()
		if len(p) != 8 {
			t.Fatalf("len(%q) = %d", p, len(p))
		}
		if seen[p] {
			t.Fatalf("повтор пароля %q", p)
		}
		seen[p] = true
	}
}

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := hashPassword("qwerty123")
	if err != nil {
		t.Fatal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("qwerty123")); err != nil {
		t.Fatalf("хеш не збігається: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("inshe")); err == nil {
		t.Fatal("чужий пароль пройшов перевірку")
	}
}

func TestRegistrationMailBody(t *testing.T) {
	body := registrationMailBody("ivan", "a1b2c3d4")
	if !strings.Contains(body, "ivan") || !strings.Contains(body, "a1b2c3d4") {
		t.Fatalf("у листі немає логіна або пароля: %s", body)
	}
}

func TestResetMailBody(t *testing.T) {
	body := resetMailBody("a1b2c3d4")
	if !strings.Contains(body, "a1b2c3d4") {
		t.Fatalf("у листі немає нового пароля: %s", body)
	}
}
