package mw

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/model"
)

// Context keys populated by the guards for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Cookie names. The cookies are a client-side cache of the signed token and
// its claims; the token itself is the source of truth and is re-validated on
// every guarded request.
const (
	CookieToken    = "token"
	CookieRole     = "role"
	CookieUsername = "username"
	CookieFlash    = "flash"
)

// SetFlash attaches a one-shot warning message for the next page load.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(CookieFlash, message, 60, "/", "", false, false)
}

// RequireRole guards an API route: the request must carry a bearer token
// whose role claim equals the required role. Missing or invalid tokens fail
// with 401, a role mismatch with 403. No redirects; the response is meant
// for machine consumption.
func RequireRole(tokens *auth.TokenService, required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		if claims.Role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequirePage guards a page route: the session token cookie must validate
// and its role claim must equal the route's role. Anything else sends the
// visitor back to the login page with a flash warning; the original
// destination is discarded.
func RequirePage(tokens *auth.TokenService, required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieToken)
		if err != nil || tokenString == "" {
			redirectToLogin(c, required)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil || claims.Role != required {
			redirectToLogin(c, required)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			redirectToLogin(c, required)
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, required model.Role) {
	switch required {
	case model.RoleAdmin:
		SetFlash(c, "Unauthorized: Admin access required.")
	default:
		SetFlash(c, "Unauthorized: Faculty access required.")
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
