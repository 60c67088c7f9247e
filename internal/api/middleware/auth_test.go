package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbmille/trivia-api/internal/api/middleware"
	"github.com/qbmille/trivia-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.NewAuthenticator(testSigningKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetUint(middleware.KeyUserID)})
	})

	return router
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newTestRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "test-agent")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyJWT_BadToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyJWT_WrongUserAgent(t *testing.T) {
	router := newTestRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "original-agent")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "different-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
