package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	ErrorMsg   string `json:"error"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

// RenderErr logs the error with the request ID and writes it as JSON.
// 5xx errors hide the underlying message from the client.
func RenderErr(ctx *gin.Context, err *Err) {
	zap.L().Error("request failed",
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", err.StatusCode),
		zap.String("error", err.ErrorMsg),
	)

	if err.StatusCode >= http.StatusInternalServerError {
		ctx.JSON(err.StatusCode, &Err{
			StatusCode: err.StatusCode,
			ErrorMsg:   http.StatusText(err.StatusCode),
		})

		return
	}

	ctx.JSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorMsg:   err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		ErrorMsg:   err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   err.Error(),
	}
}
