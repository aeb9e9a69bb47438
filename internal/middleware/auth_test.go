package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"balanceai/internal/config"
	"balanceai/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestProtected(t *testing.T) {
	validToken := signToken(t, testJWTSecret, jwt.MapClaims{
		"sub": "user-7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	wrongSecretToken := signToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expiredToken := signToken(t, testJWTSecret, jwt.MapClaims{
		"sub": "user-7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	tests := []struct {
		name            string
		authHeader      string
		expectedStatus  int
		expectedCode    string
		expectedSubject interface{}
	}{
		{
			name:           "Missing Header",
			authHeader:     "",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "MISSING_AUTH_HEADER",
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic abc123",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_AUTH_SCHEME",
		},
		{
			name:           "Garbage Token",
			authHeader:     "Bearer not.a.token",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "Wrong Secret",
			authHeader:     "Bearer " + wrongSecretToken,
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:            "Valid Token",
			authHeader:      "Bearer " + validToken,
			expectedStatus:  fiber.StatusOK,
			expectedSubject: "user-7",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()

			var subjectLocal interface{}
			app.Get("/protected", middleware.Protected(config.AuthConfig{
				Enabled:   true,
				JWTSecret: testJWTSecret,
			}), func(c *fiber.Ctx) error {
				subjectLocal = c.Locals(middleware.SubjectKey)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			if tc.expectedCode != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				var errResp middleware.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.Equal(t, tc.expectedCode, errResp.Code)
				assert.Equal(t, tc.expectedStatus, errResp.Status)
			}
			assert.Equal(t, tc.expectedSubject, subjectLocal)
		})
	}
}

func TestProtectedDisabled(t *testing.T) {
	app := fiber.New()

	handlerCalled := false
	app.Get("/open", middleware.Protected(config.AuthConfig{Enabled: false}), func(c *fiber.Ctx) error {
		handlerCalled = true
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, handlerCalled)
}
