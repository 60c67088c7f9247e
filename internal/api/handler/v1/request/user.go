package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/qbmille/trivia-api/internal/domain"
)

type UpdateUserRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
	Langue    string `json:"langue,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country,omitempty"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.FirstName, validation.Length(0, 50)),
		validation.Field(&req.LastName, validation.Length(0, 50)),
		validation.Field(&req.Role,
			validation.In(domain.RoleAdmin, domain.RoleJoueur, domain.RoleManager)),
		validation.Field(&req.Langue,
			validation.In(domain.LangueFR, domain.LangueEN, domain.LangueES, domain.LanguePT, domain.LangueDE)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.Country, validation.Length(0, 50)),
	)
}
