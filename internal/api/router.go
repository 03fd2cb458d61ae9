package api

import (
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"seatportal-backend/config"
	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/model"
	"seatportal-backend/internal/mw"
	"seatportal-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, tokens *auth.TokenService, notifier Notifier, webpushOptions *webpush.Options, srvCfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, tokens, notifier, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(srvCfg.RateLimitPerSec), srvCfg.RateLimitBurst)

	cacheTTL := time.Duration(srvCfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// Page flow. HTML rendering is handled by an external frontend; these
	// routes carry the auth and redirect semantics.
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	r.GET("/ping", handler.Ping)
	r.GET("/login", handler.LoginPage)
	r.GET("/register", handler.RegisterPage)
	r.GET("/forgot", handler.ForgotPage)
	r.POST("/login", handler.Login)
	r.POST("/register", handler.Register)
	r.POST("/forgot", handler.ForgotPassword)
	r.GET("/logout", handler.Logout)
	r.GET("/admin", mw.RequirePage(tokens, model.RoleAdmin), handler.AdminPage)
	r.GET("/faculty", mw.RequirePage(tokens, model.RoleFaculty), handler.FacultyPage)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Public catalog reads. Availability counters are served fresh;
		// the slow-moving stream and course listings go through the cache.
		api.GET("/streams", caching, handler.GetStreams)
		api.GET("/courses/:stream_id", caching, handler.GetCourses)
		api.GET("/semesters/:course_id", handler.GetSemesters)
		api.GET("/seats/:semester_id", handler.GetSeats)

		// Seat-availability push subscriptions.
		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		// Privileged mutations.
		admin := api.Group("", mw.RequireRole(tokens, model.RoleAdmin))
		{
			admin.POST("/update_seats", handler.UpdateSeats)
			admin.POST("/streams", handler.CreateStream)
			admin.POST("/courses", handler.CreateCourse)
			admin.POST("/semesters", handler.CreateSemester)
			admin.DELETE("/streams/:id", handler.DeleteStream)
			admin.DELETE("/courses/:id", handler.DeleteCourse)
		}
	}

	return r
}
