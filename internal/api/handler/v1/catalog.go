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

type CatalogService interface {
	CreateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error)
	GetStage(ctx context.Context, id uint) (domain.Stage, error)
	ListStages(ctx context.Context, langue string) ([]domain.Stage, error)
	UpdateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error)
	DeleteStage(ctx context.Context, id uint) error

	CreateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	GetSection(ctx context.Context, id uint) (domain.Section, error)
	ListSections(ctx context.Context, langue string) ([]domain.Section, error)
	UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	DeleteSection(ctx context.Context, id uint) error

	CreateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error)
	GetJeu(ctx context.Context, id uint) (domain.Jeu, error)
	ListJeux(ctx context.Context, langue string) ([]domain.Jeu, error)
	UpdateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error)
	DeleteJeu(ctx context.Context, id uint) error

	CreateQuestion(ctx context.Context, question domain.Question) (domain.Question, error)
	GetQuestion(ctx context.Context, id uint) (domain.Question, error)
	ListQuestionsByJeu(ctx context.Context, jeuID uint) ([]domain.Question, error)
	UpdateQuestion(ctx context.Context, question domain.Question) (domain.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error

	CreateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error)
	UpdateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error)
	DeleteReponse(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	svc  CatalogService
	uSvc UserService
}

func NewCatalogHandler(svc CatalogService, uSvc UserService) *CatalogHandler {
	return &CatalogHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// requireAdmin resolves the caller and rejects non-admins.
func (h *CatalogHandler) requireAdmin(ctx *gin.Context) (domain.User, bool) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return domain.User{}, false
	}

	if user.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return domain.User{}, false
	}

	return user, true
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v", name)))

		return 0, false
	}

	return uint(id), true
}

// langueQuery defaults to the caller's langue when the query param is absent.
func langueQuery(ctx *gin.Context, user domain.User) string {
	if langue := ctx.Query("langue"); langue != "" {
		return langue
	}

	return user.Langue
}

func (h *CatalogHandler) renderCatalogErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrStageNotFound):
		response.RenderErr(ctx, response.ErrNotFound("stage", "id", ctx.Param("stageID")))
	case errors.Is(err, service.ErrSectionNotFound):
		response.RenderErr(ctx, response.ErrNotFound("section", "id", ctx.Param("sectionID")))
	case errors.Is(err, service.ErrJeuNotFound):
		response.RenderErr(ctx, response.ErrNotFound("jeu", "id", ctx.Param("jeuID")))
	case errors.Is(err, service.ErrQuestionNotFound):
		response.RenderErr(ctx, response.ErrNotFound("question", "id", ctx.Param("questionID")))
	case errors.Is(err, service.ErrReponseNotFound):
		response.RenderErr(ctx, response.ErrNotFound("reponse", "id", ctx.Param("reponseID")))
	case errors.Is(err, service.ErrDuplicateNumOrder):
		response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateNumOrder))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v -> %w", op, err)))
	}
}

// Stages

// HandleCreateStage godoc
// @Summary      Create a stage
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStageRequest true "request body"
// @Success      201      {object}  domain.Stage
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stages [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateStage(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.CreateStageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stage, err := h.svc.CreateStage(ctx.Request.Context(), domain.Stage{
		Title:        req.Title,
		Niveau:       req.Niveau,
		Image:        req.Image,
		NumOrder:     req.NumOrder,
		Langue:       req.Langue,
		StatusStage:  req.StatusStage,
		Descriptions: req.Descriptions,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleCreateStage -> h.svc.CreateStage", err)

		return
	}

	ctx.JSON(http.StatusCreated, stage)
}

// HandleGetStage godoc
// @Summary      Get a stage by ID
// @Tags         catalog
// @Produce      json
// @Param        stageID  path      int  true  "stage ID"
// @Success      200      {object}  domain.Stage
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stages/{stageID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetStage(ctx *gin.Context) {
	stageID, ok := pathID(ctx, "stageID")
	if !ok {
		return
	}

	stage, err := h.svc.GetStage(ctx.Request.Context(), stageID)
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleGetStage -> h.svc.GetStage", err)

		return
	}

	ctx.JSON(http.StatusOK, stage)
}

// HandleListStages godoc
// @Summary      List stages for a langue
// @Tags         catalog
// @Produce      json
// @Param        langue   query     string  false  "langue (defaults to the caller's)"
// @Success      200      {array}   domain.Stage
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stages [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListStages(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stages, err := h.svc.ListStages(ctx.Request.Context(), langueQuery(ctx, user))
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleListStages -> h.svc.ListStages", err)

		return
	}

	ctx.JSON(http.StatusOK, stages)
}

// HandleUpdateStage godoc
// @Summary      Update a stage
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        stageID  path      int  true  "stage ID"
// @Param        request  body      request.UpdateStageRequest true "request body"
// @Success      200      {object}  domain.Stage
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stages/{stageID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateStage(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	stageID, ok := pathID(ctx, "stageID")
	if !ok {
		return
	}

	var req request.UpdateStageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stage, err := h.svc.UpdateStage(ctx.Request.Context(), domain.Stage{
		ID:           stageID,
		Title:        req.Title,
		Niveau:       req.Niveau,
		Image:        req.Image,
		NumOrder:     req.NumOrder,
		Langue:       req.Langue,
		StatusStage:  req.StatusStage,
		Descriptions: req.Descriptions,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleUpdateStage -> h.svc.UpdateStage", err)

		return
	}

	ctx.JSON(http.StatusOK, stage)
}

// HandleDeleteStage godoc
// @Summary      Delete a stage and everything under it
// @Tags         catalog
// @Produce      json
// @Param        stageID  path      int  true  "stage ID"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stages/{stageID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteStage(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	stageID, ok := pathID(ctx, "stageID")
	if !ok {
		return
	}

	if err := h.svc.DeleteStage(ctx.Request.Context(), stageID); err != nil {
		h.renderCatalogErr(ctx, "v1.HandleDeleteStage -> h.svc.DeleteStage", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// Sections

// HandleCreateSection godoc
// @Summary      Create a section
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSectionRequest true "request body"
// @Success      201      {object}  domain.Section
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /sections [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateSection(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	section, err := h.svc.CreateSection(ctx.Request.Context(), domain.Section{
		Title:         req.Title,
		Niveau:        req.Niveau,
		NumOrder:      req.NumOrder,
		Langue:        req.Langue,
		StatusSection: req.StatusSection,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleCreateSection -> h.svc.CreateSection", err)

		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// HandleListSections godoc
// @Summary      List sections for a langue
// @Tags         catalog
// @Produce      json
// @Param        langue   query     string  false  "langue (defaults to the caller's)"
// @Success      200      {array}   domain.Section
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /sections [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListSections(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	sections, err := h.svc.ListSections(ctx.Request.Context(), langueQuery(ctx, user))
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleListSections -> h.svc.ListSections", err)

		return
	}

	ctx.JSON(http.StatusOK, sections)
}

// HandleGetSection godoc
// @Summary      Get a section by ID
// @Tags         catalog
// @Produce      json
// @Param        sectionID  path      int  true  "section ID"
// @Success      200        {object}  domain.Section
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sections/{sectionID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetSection(ctx *gin.Context) {
	sectionID, ok := pathID(ctx, "sectionID")
	if !ok {
		return
	}

	section, err := h.svc.GetSection(ctx.Request.Context(), sectionID)
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleGetSection -> h.svc.GetSection", err)

		return
	}

	ctx.JSON(http.StatusOK, section)
}

// HandleUpdateSection godoc
// @Summary      Update a section
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        sectionID  path      int  true  "section ID"
// @Param        request    body      request.UpdateSectionRequest true "request body"
// @Success      200        {object}  domain.Section
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sections/{sectionID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateSection(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	sectionID, ok := pathID(ctx, "sectionID")
	if !ok {
		return
	}

	var req request.UpdateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	section, err := h.svc.UpdateSection(ctx.Request.Context(), domain.Section{
		ID:            sectionID,
		Title:         req.Title,
		Niveau:        req.Niveau,
		NumOrder:      req.NumOrder,
		Langue:        req.Langue,
		StatusSection: req.StatusSection,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleUpdateSection -> h.svc.UpdateSection", err)

		return
	}

	ctx.JSON(http.StatusOK, section)
}

// HandleDeleteSection godoc
// @Summary      Delete a section, detaching its jeux
// @Tags         catalog
// @Produce      json
// @Param        sectionID  path      int  true  "section ID"
// @Success      204        "No Content"
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sections/{sectionID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteSection(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	sectionID, ok := pathID(ctx, "sectionID")
	if !ok {
		return
	}

	if err := h.svc.DeleteSection(ctx.Request.Context(), sectionID); err != nil {
		h.renderCatalogErr(ctx, "v1.HandleDeleteSection -> h.svc.DeleteSection", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// Jeux

// HandleCreateJeu godoc
// @Summary      Create a jeu
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateJeuRequest true "request body"
// @Success      201      {object}  domain.Jeu
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jeux [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateJeu(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.CreateJeuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	jeu, err := h.svc.CreateJeu(ctx.Request.Context(), domain.Jeu{
		Langue:    req.Langue,
		Image:     req.Image,
		Niveau:    req.Niveau,
		NumOrder:  req.NumOrder,
		StatusJeu: req.StatusJeu,
		StageID:   req.StageID,
		SectionID: req.SectionID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleCreateJeu -> h.svc.CreateJeu", err)

		return
	}

	ctx.JSON(http.StatusCreated, jeu)
}

// HandleGetJeu godoc
// @Summary      Get a jeu with its questions and reponses
// @Tags         catalog
// @Produce      json
// @Param        jeuID    path      int  true  "jeu ID"
// @Success      200      {object}  domain.Jeu
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jeux/{jeuID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetJeu(ctx *gin.Context) {
	jeuID, ok := pathID(ctx, "jeuID")
	if !ok {
		return
	}

	jeu, err := h.svc.GetJeu(ctx.Request.Context(), jeuID)
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleGetJeu -> h.svc.GetJeu", err)

		return
	}

	ctx.JSON(http.StatusOK, jeu)
}

// HandleListJeux godoc
// @Summary      List jeux for a langue
// @Tags         catalog
// @Produce      json
// @Param        langue   query     string  false  "langue (defaults to the caller's)"
// @Success      200      {array}   domain.Jeu
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jeux [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListJeux(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	jeux, err := h.svc.ListJeux(ctx.Request.Context(), langueQuery(ctx, user))
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleListJeux -> h.svc.ListJeux", err)

		return
	}

	ctx.JSON(http.StatusOK, jeux)
}

// HandleUpdateJeu godoc
// @Summary      Update a jeu
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        jeuID    path      int  true  "jeu ID"
// @Param        request  body      request.UpdateJeuRequest true "request body"
// @Success      200      {object}  domain.Jeu
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jeux/{jeuID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateJeu(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	jeuID, ok := pathID(ctx, "jeuID")
	if !ok {
		return
	}

	var req request.UpdateJeuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	jeu, err := h.svc.UpdateJeu(ctx.Request.Context(), domain.Jeu{
		ID:        jeuID,
		Langue:    req.Langue,
		Image:     req.Image,
		Niveau:    req.Niveau,
		NumOrder:  req.NumOrder,
		StatusJeu: req.StatusJeu,
		StageID:   req.StageID,
		SectionID: req.SectionID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleUpdateJeu -> h.svc.UpdateJeu", err)

		return
	}

	ctx.JSON(http.StatusOK, jeu)
}

// HandleDeleteJeu godoc
// @Summary      Delete a jeu and its questions
// @Tags         catalog
// @Produce      json
// @Param        jeuID    path      int  true  "jeu ID"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jeux/{jeuID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteJeu(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	jeuID, ok := pathID(ctx, "jeuID")
	if !ok {
		return
	}

	if err := h.svc.DeleteJeu(ctx.Request.Context(), jeuID); err != nil {
		h.renderCatalogErr(ctx, "v1.HandleDeleteJeu -> h.svc.DeleteJeu", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// Questions

// HandleCreateQuestion godoc
// @Summary      Create a question
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateQuestionRequest true "request body"
// @Success      201      {object}  domain.Question
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /questions [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateQuestion(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	question, err := h.svc.CreateQuestion(ctx.Request.Context(), domain.Question{
		Intitule: req.Intitule,
		Langue:   req.Langue,
		OrderNum: req.OrderNum,
		JeuID:    req.JeuID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleCreateQuestion -> h.svc.CreateQuestion", err)

		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// HandleListQuestions godoc
// @Summary      List the questions of a jeu
// @Tags         catalog
// @Produce      json
// @Param        jeu_id   query     int  true  "jeu ID"
// @Success      200      {array}   domain.Question
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /questions [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListQuestions(ctx *gin.Context) {
	jeuID, err := strconv.Atoi(ctx.Query("jeu_id"))
	if err != nil || jeuID <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid jeu_id")))

		return
	}

	questions, err := h.svc.ListQuestionsByJeu(ctx.Request.Context(), uint(jeuID))
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleListQuestions -> h.svc.ListQuestionsByJeu", err)

		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// HandleUpdateQuestion godoc
// @Summary      Update a question
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        questionID  path      int  true  "question ID"
// @Param        request     body      request.UpdateQuestionRequest true "request body"
// @Success      200         {object}  domain.Question
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /questions/{questionID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateQuestion(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	questionID, ok := pathID(ctx, "questionID")
	if !ok {
		return
	}

	var req request.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	question, err := h.svc.UpdateQuestion(ctx.Request.Context(), domain.Question{
		ID:       questionID,
		Intitule: req.Intitule,
		Langue:   req.Langue,
		OrderNum: req.OrderNum,
		JeuID:    req.JeuID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleUpdateQuestion -> h.svc.UpdateQuestion", err)

		return
	}

	ctx.JSON(http.StatusOK, question)
}

// HandleDeleteQuestion godoc
// @Summary      Delete a question and its reponses
// @Tags         catalog
// @Produce      json
// @Param        questionID  path      int  true  "question ID"
// @Success      204         "No Content"
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /questions/{questionID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteQuestion(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	questionID, ok := pathID(ctx, "questionID")
	if !ok {
		return
	}

	if err := h.svc.DeleteQuestion(ctx.Request.Context(), questionID); err != nil {
		h.renderCatalogErr(ctx, "v1.HandleDeleteQuestion -> h.svc.DeleteQuestion", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reponses

// HandleCreateReponse godoc
// @Summary      Create a reponse
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReponseRequest true "request body"
// @Success      201      {object}  domain.Reponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reponses [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateReponse(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.CreateReponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reponse, err := h.svc.CreateReponse(ctx.Request.Context(), domain.Reponse{
		Intitule:   req.Intitule,
		Langue:     req.Langue,
		IsCorrect:  req.IsCorrect,
		QuestionID: req.QuestionID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleCreateReponse -> h.svc.CreateReponse", err)

		return
	}

	ctx.JSON(http.StatusCreated, reponse)
}

// HandleUpdateReponse godoc
// @Summary      Update a reponse
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        reponseID  path      int  true  "reponse ID"
// @Param        request    body      request.UpdateReponseRequest true "request body"
// @Success      200        {object}  domain.Reponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /reponses/{reponseID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateReponse(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	reponseID, ok := pathID(ctx, "reponseID")
	if !ok {
		return
	}

	var req request.UpdateReponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reponse, err := h.svc.UpdateReponse(ctx.Request.Context(), domain.Reponse{
		ID:         reponseID,
		Intitule:   req.Intitule,
		Langue:     req.Langue,
		IsCorrect:  req.IsCorrect,
		QuestionID: req.QuestionID,
	})
	if err != nil {
		h.renderCatalogErr(ctx, "v1.HandleUpdateReponse -> h.svc.UpdateReponse", err)

		return
	}

	ctx.JSON(http.StatusOK, reponse)
}

// HandleDeleteReponse godoc
// @Summary      Delete a reponse
// @Tags         catalog
// @Produce      json
// @Param        reponseID  path      int  true  "reponse ID"
// @Success      204        "No Content"
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /reponses/{reponseID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteReponse(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	reponseID, ok := pathID(ctx, "reponseID")
	if !ok {
		return
	}

	if err := h.svc.DeleteReponse(ctx.Request.Context(), reponseID); err != nil {
		h.renderCatalogErr(ctx, "v1.HandleDeleteReponse -> h.svc.DeleteReponse", err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
