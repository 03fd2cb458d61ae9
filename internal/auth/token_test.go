package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatportal-backend/internal/model"
)

func newTestService(expiry time.Duration) *TokenService {
	return NewTokenService("test-secret", expiry, "seatportal-test")
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &model.User{ID: 42, Username: "prof1", Role: model.RoleFaculty}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "prof1", claims.Username)
	assert.Equal(t, model.RoleFaculty, claims.Role)
	assert.Equal(t, "seatportal-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	user := &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}

	token, err := svc.Issue(user)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}

	token, err := newTestService(time.Hour).Issue(user)
	require.NoError(t, err)

	other := NewTokenService("different-secret", time.Hour, "seatportal-test")
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(tokenString)
		assert.Error(t, err, "token %q should not validate", tokenString)
	}
}

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", expected: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, token)
		})
	}
}
