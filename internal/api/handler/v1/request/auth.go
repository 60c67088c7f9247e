package request

import (
	"errors"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/qbmille/trivia-api/internal/domain"
)

var (
	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
	errUnsupportedLangue       = errors.New("unsupported langue")
)

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Langue          string `json:"langue,omitempty"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
	)
	if err != nil {
		return err
	}

	if !isStrongPassword(req.Password) {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	if req.Langue != "" && !domain.IsSupportedLangue(req.Langue) {
		return errUnsupportedLangue
	}

	return nil
}

func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type OnboardingRequest struct {
	Role    string `json:"role"`
	Langue  string `json:"langue"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
}

func (req *OnboardingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required,
			validation.In(domain.RoleAdmin, domain.RoleJoueur, domain.RoleManager)),
		validation.Field(&req.Langue, validation.Required,
			validation.In(domain.LangueFR, domain.LangueEN, domain.LangueES, domain.LanguePT, domain.LangueDE)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.Country, validation.Length(0, 50)),
	)
}
