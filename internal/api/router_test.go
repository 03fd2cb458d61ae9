package api

import (
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"seatportal-backend/config"
	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/db"
	"seatportal-backend/internal/model"
	"seatportal-backend/internal/store"
)

// recordingNotifier captures dispatched semester ids.
type recordingNotifier struct {
	dispatched []int64
}

func (n *recordingNotifier) Dispatch(semesterID int64) {
	n.dispatched = append(n.dispatched, semesterID)
}

type testEnv struct {
	router   *gin.Engine
	store    store.Store
	tokens   *auth.TokenService
	notifier *recordingNotifier
}

// newTestEnv wires a router against a fresh in-memory database. Rate limits
// are generous so tests never trip them.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	s := store.NewGormStore(gormDB)
	tokens := auth.NewTokenService("api-test-secret", time.Hour, "seatportal-test")
	notifier := &recordingNotifier{}
	srvCfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	}

	return &testEnv{
		router:   NewRouter(s, tokens, notifier, nil, srvCfg),
		store:    s,
		tokens:   tokens,
		notifier: notifier,
	}
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	return e.issueToken(t, "admin-tester", model.RoleAdmin)
}

func (e *testEnv) issueToken(t *testing.T, username string, role model.Role) string {
	t.Helper()
	token, err := e.tokens.Issue(&model.User{ID: 1, Username: username, Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doForm(method, path string, form map[string]string) *httptest.ResponseRecorder {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
