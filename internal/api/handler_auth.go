package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/model"
	"seatportal-backend/internal/mw"
	"seatportal-backend/internal/store"
)

// Login handles the POST /login form submission. A successful login issues a
// signed access token, mirrors it into cookies for the page flow, and
// redirects by role. Every failure surfaces the same generic message so the
// response never reveals whether the username, role, or password was wrong.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))
	role := model.Role(strings.TrimSpace(c.PostForm("role")))

	invalid := func() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials or role"})
	}

	if username == "" || password == "" || !model.ValidRole(role) {
		invalid()
		return
	}

	user, err := h.store.FindUserByUsernameAndRole(c.Request.Context(), username, role)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			invalid()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		invalid()
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	maxAge := h.tokens.ExpirySeconds()
	c.SetCookie(mw.CookieToken, token, maxAge, "/", "", false, true)
	c.SetCookie(mw.CookieRole, string(user.Role), maxAge, "/", "", false, false)
	c.SetCookie(mw.CookieUsername, user.Username, maxAge, "/", "", false, false)

	dest := "/admin"
	if user.Role == model.RoleFaculty {
		dest = "/faculty"
	}
	c.Redirect(http.StatusSeeOther, dest)
}

// Register handles the POST /register form submission.
func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))
	role := model.Role(strings.TrimSpace(c.PostForm("role")))

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	_, err := h.store.CreateUser(c.Request.Context(), username, role, password)
	switch {
	case errors.Is(err, store.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be faculty or admin"})
		return
	case errors.Is(err, store.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	mw.SetFlash(c, "Registration successful! Please login.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ForgotPassword handles the POST /forgot form submission.
func (h *Handler) ForgotPassword(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	newPassword := strings.TrimSpace(c.PostForm("new_password"))

	if username == "" || newPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and new password are required"})
		return
	}

	err := h.store.ResetPassword(c.Request.Context(), username, newPassword)
	if errors.Is(err, store.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	mw.SetFlash(c, "Password reset successful! Please login with your new password.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the session cookies and redirects to the login page. The
// token itself stays valid until its natural expiry; there is no server-side
// revocation list.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(mw.CookieToken, "", -1, "/", "", false, true)
	c.SetCookie(mw.CookieRole, "", -1, "/", "", false, false)
	c.SetCookie(mw.CookieUsername, "", -1, "/", "", false, false)
	mw.SetFlash(c, "Logged out successfully.")
	c.Redirect(http.StatusFound, "/login")
}
