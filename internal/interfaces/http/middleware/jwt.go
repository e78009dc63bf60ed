package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stayhub/backend/internal/domain/authz"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"github.com/stayhub/backend/internal/interfaces/http/dto"
)

// Auth context keys
const (
	ActorKey      = "auth_actor"
	ClaimsKey     = "auth_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RequireAuth returns a middleware that validates the bearer token and places
// the resulting actor in the request context. Requests without a valid token
// are rejected with 401.
func RequireAuth(tokenService *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, tokenService)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		accountID, err := claims.GetAccountUUID()
		if err != nil {
			abortUnauthorized(c, auth.ErrInvalidClaims)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(ActorKey, authz.Actor{ID: accountID, IsAdmin: claims.IsAdmin})
		c.Next()
	}
}

// GetActor extracts the authenticated actor from the context
func GetActor(c *gin.Context) (authz.Actor, bool) {
	value, ok := c.Get(ActorKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := value.(authz.Actor)
	return actor, ok
}

// GetClaims extracts the validated token claims from the context
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

func extractClaims(c *gin.Context, tokenService *auth.TokenService) (*auth.Claims, error) {
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader == "" {
		return nil, auth.ErrInvalidToken
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return nil, auth.ErrInvalidToken
	}

	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}

	return tokenService.Validate(tokenString)
}

func abortUnauthorized(c *gin.Context, err error) {
	code := dto.ErrCodeUnauthorized
	message := "Authentication required"
	if errors.Is(err, auth.ErrExpiredToken) {
		code = dto.ErrCodeTokenExpired
		message = "Token has expired"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
