package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qbmille/trivia-api/internal/api/handler/v1/request"
	"github.com/qbmille/trivia-api/internal/api/handler/v1/response"
	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/service"
)

// OnboardingService seeds a player's progress once their profile is complete.
type OnboardingService interface {
	Start(ctx context.Context, user domain.User) error
}

type UserHandler struct {
	svc  UserService
	pSvc OnboardingService
}

func NewUserHandler(svc UserService, pSvc OnboardingService) *UserHandler {
	return &UserHandler{
		svc:  svc,
		pSvc: pSvc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleOnboarding godoc
// @Summary      Complete onboarding for the authenticated user
// @Description  Records role, langue, phone and country, then seeds the player's progress. Idempotent.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.OnboardingRequest true "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /onboarding [post]
// @Security BearerAuth
func (h *UserHandler) HandleOnboarding(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.OnboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.CompleteOnboarding(ctx.Request.Context(), user.ID, req.Role, req.Langue, req.Phone, req.Country)
	if err != nil {
		err = fmt.Errorf("v1.HandleOnboarding -> h.svc.CompleteOnboarding -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if updated.Role == domain.RoleJoueur {
		if err = h.pSvc.Start(ctx.Request.Context(), updated); err != nil {
			err = fmt.Errorf("v1.HandleOnboarding -> h.pSvc.Start -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userID"))
	if err != nil || userID <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user ID")))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "userID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if user.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleUpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Param        request  body      request.UpdateUserRequest true "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [put]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if caller.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", caller.ID)))

		return
	}

	userID, err := strconv.Atoi(ctx.Param("userID"))
	if err != nil || userID <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user ID")))

		return
	}

	var req request.UpdateUserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateUser(ctx.Request.Context(), domain.User{
		ID:        uint(userID),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Langue:    req.Langue,
		Phone:     req.Phone,
		Country:   req.Country,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "userID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteUser godoc
// @Summary      Delete a user and their progress
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [delete]
// @Security BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if caller.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", caller.ID)))

		return
	}

	userID, err := strconv.Atoi(ctx.Param("userID"))
	if err != nil || userID <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user ID")))

		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), uint(userID)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "userID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
