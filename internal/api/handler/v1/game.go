package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qbmille/trivia-api/internal/api/handler/v1/request"
	"github.com/qbmille/trivia-api/internal/api/handler/v1/response"
	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/service"
)

type ProgressService interface {
	Start(ctx context.Context, user domain.User) error
	Current(ctx context.Context, userID uint) (domain.Palmares, error)
	Board(ctx context.Context, userID uint) (service.BoardView, error)
	History(ctx context.Context, userID uint) ([]domain.Palmares, error)
	ListAll(ctx context.Context) ([]domain.Palmares, error)
	SubmitScore(ctx context.Context, jeuID uint, selections map[uint]uint) (domain.ScoreResult, error)
	Advance(ctx context.Context, userID uint, score int) (domain.AdvanceResult, error)
}

type GameHandler struct {
	svc  ProgressService
	uSvc UserService
}

func NewGameHandler(svc ProgressService, uSvc UserService) *GameHandler {
	return &GameHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleStartGame godoc
// @Summary      Seed the caller's progress and board
// @Description  Creates the first CURRENT palmares entry and the 25-cell board. Safe to call twice.
// @Tags         game
// @Produce      json
// @Success      204  "No Content"
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /game/start [post]
// @Security BearerAuth
func (h *GameHandler) HandleStartGame(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.Start(ctx.Request.Context(), user); err != nil {
		if errors.Is(err, service.ErrStageNotFound) || errors.Is(err, service.ErrJeuNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("catalog", "langue", user.Langue))

			return
		}

		err = fmt.Errorf("v1.HandleStartGame -> h.svc.Start -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetBoard godoc
// @Summary      Get the caller's board
// @Tags         game
// @Produce      json
// @Success      200  {object}  response.BoardResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /game/board [get]
// @Security BearerAuth
func (h *GameHandler) HandleGetBoard(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	board, err := h.svc.Board(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrBoardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("board", "userID", user.ID))

			return
		}

		err = fmt.Errorf("v1.HandleGetBoard -> h.svc.Board -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.BoardResponse{
		Cells:     board.Cells,
		Current:   board.Current,
		Validated: board.Validated,
	})
}

// HandleGetCurrent godoc
// @Summary      Get the caller's current palmares entry
// @Tags         game
// @Produce      json
// @Success      200  {object}  domain.Palmares
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /game/current [get]
// @Security BearerAuth
func (h *GameHandler) HandleGetCurrent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	entry, err := h.svc.Current(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrPalmaresNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("palmares", "userID", user.ID))

			return
		}

		err = fmt.Errorf("v1.HandleGetCurrent -> h.svc.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleSubmitJeu godoc
// @Summary      Grade a finished jeu
// @Description  Counts one point per question whose correct reponse was selected, returns the score percent.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        jeuID    path      int  true  "jeu ID"
// @Param        request  body      request.SubmitRequest true "request body"
// @Success      200      {object}  domain.ScoreResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /game/jeux/{jeuID}/submit [post]
// @Security BearerAuth
func (h *GameHandler) HandleSubmitJeu(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	jeuID, ok := pathID(ctx, "jeuID")
	if !ok {
		return
	}

	var req request.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.SubmitScore(ctx.Request.Context(), jeuID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrJeuNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("jeu", "jeuID", jeuID))

			return
		}

		err = fmt.Errorf("v1.HandleSubmitJeu -> h.svc.SubmitScore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleAdvance godoc
// @Summary      Record a score and move to the next jeu
// @Description  Validates the CURRENT entry when the score clears the threshold and opens the next jeu.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdvanceRequest true "request body"
// @Success      200      {object}  domain.AdvanceResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /game/advance [post]
// @Security BearerAuth
func (h *GameHandler) HandleAdvance(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.AdvanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.Advance(ctx.Request.Context(), user.ID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPalmaresNotFound):
			response.RenderErr(ctx, response.ErrNotFound("palmares", "userID", user.ID))
		case errors.Is(err, service.ErrProgressConflict):
			response.RenderErr(ctx, response.ErrConflict(service.ErrProgressConflict))
		default:
			err = fmt.Errorf("v1.HandleAdvance -> h.svc.Advance -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleListPalmares godoc
// @Summary      List every player's palmares entries
// @Tags         palmares
// @Produce      json
// @Success      200  {array}   domain.Palmares
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /palmares [get]
// @Security BearerAuth
func (h *GameHandler) HandleListPalmares(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if user.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	entries, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPalmares -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleMyPalmares godoc
// @Summary      Get the caller's palmares history
// @Tags         palmares
// @Produce      json
// @Success      200  {array}   domain.Palmares
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /palmares/me [get]
// @Security BearerAuth
func (h *GameHandler) HandleMyPalmares(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	entries, err := h.svc.History(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMyPalmares -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
