package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/D-a-sh-a/Gym/internal/mailer"
)

var mail mailer.Sender = mailer.Noop{}

// SetMailer задає відправника листів (викликається з main).
func SetMailer(m mailer.Sender) {
	if m != nil {
		mail = m
	}
}

// sendMailAsync — fire-and-forget: помилка пошти не зриває відповідь.
func sendMailAsync(to, subject, htmlBody string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mail.Send(ctx, to, subject, htmlBody); err != nil {
			log.Printf("❌ Помилка пошти (to=%s): %v", to, err)
		}
	}()
}

func registrationMailBody(login, password string) string {
	return fmt.Sprintf(`<h2>Вітаємо!</h2>
     <p>Ваш логін: <strong>%s</strong></p>
     <p>Ваш пароль: <strong>%s</strong></p>
     <hr>
     <p style="color: red;">⚠️ Обов'язково змініть цей пароль в особистому кабінеті!</p>
     <a href="http://localhost:3000/login">Увійти в кабінет</a>`, login, password)
}

func resetMailBody(password string) string {
	return fmt.Sprintf(`<h3>Ваш пароль було скинуто</h3>
     <p>Новий пароль: <strong>%s</strong></p>
     <p style="color: red;">⚠️ Будь ласка, змініть пароль в особистому кабінеті!</p>`, password)
}
