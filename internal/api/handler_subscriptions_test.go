package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutSubscriptionValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/subscriptions", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/subscriptions", `{"endpoint":"https://example.com/push"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	sem := seedSemester(t, env, 0)

	body := fmt.Sprintf(
		`{"endpoint":"https://example.com/push","p256dh":"key","auth":"secret","subscribed_semesters":[%d]}`,
		sem.ID)
	w := env.do(http.MethodPut, "/api/subscriptions", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/subscriptions?endpoint=https://example.com/push", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"subscribed_semesters":[%d]}`, sem.ID), w.Body.String())

	// Replacing the subscription replaces the semester set.
	body = `{"endpoint":"https://example.com/push","p256dh":"key","auth":"secret","subscribed_semesters":[]}`
	w = env.do(http.MethodPut, "/api/subscriptions", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/subscriptions?endpoint=https://example.com/push", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subscribed_semesters":[]}`, w.Body.String())

	w = env.do(http.MethodDelete, "/api/subscriptions", `{"endpoint":"https://example.com/push"}`, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/api/subscriptions?endpoint=https://example.com/push", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVAPIDPublicKeyUnconfigured(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/vapid_public_key", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
