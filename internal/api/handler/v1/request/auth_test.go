package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qbmille/trivia-api/internal/api/handler/v1/request"
)

func validSignup() request.SignupRequest {
	return request.SignupRequest{
		Email:           "jean@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		FirstName:       "Jean",
		LastName:        "Dupont",
	}
}

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.SignupRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *request.SignupRequest) {}},
		{name: "valid with langue", mutate: func(r *request.SignupRequest) { r.Langue = "EN" }},
		{name: "missing email", mutate: func(r *request.SignupRequest) { r.Email = "" }, wantErr: true},
		{name: "bad email", mutate: func(r *request.SignupRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "short password", mutate: func(r *request.SignupRequest) {
			r.Password = "pass1"
			r.ConfirmPassword = "pass1"
		}, wantErr: true},
		{name: "password without digit", mutate: func(r *request.SignupRequest) {
			r.Password = "passwords"
			r.ConfirmPassword = "passwords"
		}, wantErr: true},
		{name: "password without letter", mutate: func(r *request.SignupRequest) {
			r.Password = "12345678"
			r.ConfirmPassword = "12345678"
		}, wantErr: true},
		{name: "confirm mismatch", mutate: func(r *request.SignupRequest) { r.ConfirmPassword = "password2" }, wantErr: true},
		{name: "unsupported langue", mutate: func(r *request.SignupRequest) { r.Langue = "IT" }, wantErr: true},
		{name: "missing first name", mutate: func(r *request.SignupRequest) { r.FirstName = "" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnboardingRequestValidate(t *testing.T) {
	valid := request.OnboardingRequest{Role: "JOUEUR", Langue: "FR"}
	assert.NoError(t, valid.Validate())

	badRole := request.OnboardingRequest{Role: "PLAYER", Langue: "FR"}
	assert.Error(t, badRole.Validate())

	badLangue := request.OnboardingRequest{Role: "JOUEUR", Langue: "XX"}
	assert.Error(t, badLangue.Validate())

	missing := request.OnboardingRequest{}
	assert.Error(t, missing.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	valid := request.LoginRequest{Email: "jean@example.com", Password: "password1"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&request.LoginRequest{Password: "password1"}).Validate())
	assert.Error(t, (&request.LoginRequest{Email: "jean@example.com"}).Validate())
}
