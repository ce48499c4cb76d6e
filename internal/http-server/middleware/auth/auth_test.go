package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelBooker/internal/http-server/middleware/auth"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, userID int, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := &auth.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int
	}{
		{
			name:       "valid token passes user id through",
			header:     "Bearer " + signToken(t, 7, secret, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signing key",
			header:     "Bearer " + signToken(t, 7, "other-secret", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + signToken(t, 7, secret, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := auth.UserID(r.Context())
				require.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			handler := auth.New(slogdiscard.NewDiscardLogger(), secret)(next)

			req := httptest.NewRequest(http.MethodGet, "/booking", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantUserID, gotUserID)
			}
		})
	}
}

func TestUserID_Absent(t *testing.T) {
	t.Parallel()

	_, ok := auth.UserID(context.Background())
	assert.False(t, ok)
}
