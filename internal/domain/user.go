package domain

import "time"

const (
	RoleAdmin   = "ADMIN"
	RoleJoueur  = "JOUEUR"
	RoleManager = "MANAGER"
)

// Supported locales. Content and progress rows carry one of these so a
// player only ever sees the catalog of their chosen language.
const (
	LangueFR = "FR"
	LangueEN = "EN"
	LangueES = "ES"
	LanguePT = "PT"
	LangueDE = "DE"
)

func IsSupportedLangue(langue string) bool {
	switch langue {
	case LangueFR, LangueEN, LangueES, LanguePT, LangueDE:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Langue    string    `json:"langue"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	Onboarded bool      `json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
