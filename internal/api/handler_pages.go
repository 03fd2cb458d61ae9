package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatportal-backend/internal/mw"
)

// Ping answers a liveness probe.
func (h *Handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "App is alive!")
}

// pageDescriptor answers a page mount for the external renderer, carrying
// any pending flash message. The flash cookie is one-shot and cleared here.
func pageDescriptor(c *gin.Context, page string) gin.H {
	resp := gin.H{"page": page}
	if flash, err := c.Cookie(mw.CookieFlash); err == nil && flash != "" {
		resp["flash"] = flash
		c.SetCookie(mw.CookieFlash, "", -1, "/", "", false, false)
	}
	return resp
}

// LoginPage handles GET /login.
func (h *Handler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageDescriptor(c, "login"))
}

// RegisterPage handles GET /register.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageDescriptor(c, "register"))
}

// ForgotPage handles GET /forgot.
func (h *Handler) ForgotPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageDescriptor(c, "forgot"))
}

// AdminPage handles GET /admin behind the admin page guard.
func (h *Handler) AdminPage(c *gin.Context) {
	resp := pageDescriptor(c, "admin")
	resp["username"] = c.GetString(mw.CtxUsername)
	c.JSON(http.StatusOK, resp)
}

// FacultyPage handles GET /faculty behind the faculty page guard.
func (h *Handler) FacultyPage(c *gin.Context) {
	resp := pageDescriptor(c, "faculty")
	resp["username"] = c.GetString(mw.CtxUsername)
	c.JSON(http.StatusOK, resp)
}
