package response

import "github.com/qbmille/trivia-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
