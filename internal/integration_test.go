package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"seatportal-backend/config"
	"seatportal-backend/internal/api"
	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/db"
	"seatportal-backend/internal/model"
	"seatportal-backend/internal/seed"
	"seatportal-backend/internal/store"
)

// TestSeatPortalLifecycle walks the whole flow: seeded database, login as
// the default admin, seat update through the API, and the public read
// reflecting the new count.
func TestSeatPortalLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	appStore := store.NewGormStore(testDB)

	// 2. Explicit startup seeding, the way the daemon runs it.
	require.NoError(t, seed.Run(context.Background(), appStore))

	tokens := auth.NewTokenService("integration-secret", time.Hour, "seatportal-test")
	srvCfg := &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTLSeconds: 60}
	router := api.NewRouter(appStore, tokens, nil, nil, srvCfg)

	// 3. The seeded catalog is publicly visible.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/streams", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var streams []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &streams))
	require.Len(t, streams, 3)
	assert.Equal(t, "BTech", streams[0].Name)

	// 4. Login as the seeded admin and capture the issued token.
	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "admin123")
	form.Set("role", "admin")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))

	var adminToken string
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			adminToken = c.Value
		}
	}
	require.NotEmpty(t, adminToken)

	claims, err := tokens.Validate(adminToken)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, claims.Role)

	// 5. Pick a seeded semester and overwrite its seat count.
	courses, err := appStore.ListCourses(context.Background(), streams[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	semesters, err := appStore.ListSemesters(context.Background(), courses[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, semesters)
	target := semesters[0]
	require.Equal(t, 60, target.AvailableSeats)

	body := fmt.Sprintf(`{"semester_id":%d,"count":42}`, target.ID)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/update_seats", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"message":"Updated successfully","semester_id":%d,"available":42}`, target.ID), w.Body.String())

	// 6. The public seat read reflects the update.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("/api/seats/%d", target.ID), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"semester_id":%d,"available":42}`, target.ID), w.Body.String())

	// 7. The seeded faculty account cannot touch the seat counter.
	form = url.Values{}
	form.Set("username", "faculty")
	form.Set("password", "faculty123")
	form.Set("role", "faculty")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/faculty", w.Header().Get("Location"))

	var facultyToken string
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			facultyToken = c.Value
		}
	}
	require.NotEmpty(t, facultyToken)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/update_seats", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+facultyToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// 8. Seeding again is a no-op.
	require.NoError(t, seed.Run(context.Background(), appStore))
	streams2, err := appStore.ListStreams(context.Background())
	require.NoError(t, err)
	assert.Len(t, streams2, 3)
}
