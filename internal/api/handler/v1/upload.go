package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qbmille/trivia-api/internal/api/handler/v1/response"
	"github.com/qbmille/trivia-api/internal/service"
)

type UploadService interface {
	SaveImage(file *multipart.FileHeader) (string, error)
}

type UploadHandler struct {
	svc  UploadService
	uSvc UserService
}

func NewUploadHandler(svc UploadService, uSvc UserService) *UploadHandler {
	return &UploadHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleUploadImage godoc
// @Summary      Upload an image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "image file"
// @Success      201    {object}  response.UploadResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /images [post]
// @Security BearerAuth
func (h *UploadHandler) HandleUploadImage(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing image field")))

		return
	}

	url, err := h.svc.SaveImage(file)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) || errors.Is(err, service.ErrUnsupportedType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUploadImage -> h.svc.SaveImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
