package models

import (
	"database/sql"
	"time"
)

// Role — закрита множина ролей. Порожнє значення = гість (без сесії).
type Role string

const (
	RoleGuest   Role = ""
	RoleManager Role = "manager"
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// ParseRole повертає роль з рядка БД; все невідоме — гість.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleManager, RoleTrainer, RoleClient:
		return Role(s)
	default:
		return RoleGuest
	}
}

type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	Password string `json:"-"` // bcrypt-хеш
	Role     Role   `json:"role"`
}

// SessionUser — ідентичність у сесії (без пароля).
type SessionUser struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

type Client struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
}

type Trainer struct {
	ID          int            `json:"id"`
	FullName    string         `json:"full_name"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Experience  int            `json:"experience"`
	Description sql.NullString `json:"description"`
	HasPhoto    bool           `json:"has_photo"`
}

type PriceItem struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Duration string  `json:"duration"` // вільний текст, парситься на "місяць"/"рік"
	Price    float64 `json:"price"`
}

type Booking struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	TrainerID int       `json:"trainer_id"`
	PriceID   int       `json:"price_id"`
	StartTime time.Time `json:"start_time"`
}

type Subscription struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	PriceID   int       `json:"price_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Title     string    `json:"title"` // для JOIN запитів
}
