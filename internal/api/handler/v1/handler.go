package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qbmille/trivia-api/internal/api/handler/v1/response"
	"github.com/qbmille/trivia-api/internal/api/middleware"
	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/service"
)

// UserService is the slice of the user service the handlers need to
// resolve the authenticated user.
type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	raw, ok := ctx.Get(middleware.KeyUserID)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing user in context"))
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid user in context"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "userID", userID)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("uSvc.GetUser -> %w", err))
	}

	return user, nil
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      json
// @Success      200  {string}  string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
