package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qbmille/trivia-api/internal/pkg/jwthelper"
)

// KeyUserID is the gin context key the authenticated user's ID is stored under.
const KeyUserID = "userID"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT validates the Bearer token and stores the user ID in the
// request context. Requests with a missing or invalid token are aborted
// with 401.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		segments := strings.Split(header, " ")
		if len(segments) != 2 || segments[0] != "Bearer" {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		claims, err := jwthelper.ParseToken([]byte(a.signingKey), segments[1])
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		// A token replayed from a different client is rejected.
		if claims.UserAgent != ctx.Request.UserAgent() {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		ctx.Set(KeyUserID, claims.UserID)
		ctx.Next()
	}
}
