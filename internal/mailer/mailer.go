package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Sender відправляє листи (облікові дані, скидання пароля).
// Відправлення — fire-and-forget: помилка лише логується викликачем.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// New повертає Resend-відправника, або Noop без API-ключа (локальна розробка).
func New(apiKey, from string) Sender {
	if apiKey == "" {
		log.Println("RESEND_API_KEY не задано — листи тільки в лог")
		return Noop{}
	}
	return &Resend{client: resend.NewClient(apiKey), from: from}
}

// Resend відправляє листи через Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

func (s *Resend) Send(ctx context.Context, to, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("помилка відправлення листа: %w", err)
	}
	log.Printf("📧 Лист відправлено: to=%s subject=%q id=%s", to, subject, sent.Id)
	return nil
}

// Noop нічого не відправляє, лише пише в лог.
type Noop struct{}

func (Noop) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("📧 [noop] Лист не відправлено: to=%s subject=%q", to, subject)
	return nil
}
