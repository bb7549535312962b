package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreauth "grades_backend/internals/auth"
)

type stubValidator struct {
	claim *coreauth.IdentityClaim
	err   error
}

func (s *stubValidator) Validate(_ context.Context, _ string) (*coreauth.IdentityClaim, error) {
	return s.claim, s.err
}

func newTestApp(v coreauth.TokenValidator, handlerHit *bool) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		if handlerHit != nil {
			*handlerHit = true
		}
		return c.SendString("ok")
	}
	app.Get("/view", AuthMiddleware(v), RequireView("test"), ok)
	app.Post("/manage", AuthMiddleware(v), RequireManage("test"), ok)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := newTestApp(&stubValidator{}, nil)
	resp := doRequest(t, app, "GET", "/view", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newTestApp(&stubValidator{}, nil)
	resp := doRequest(t, app, "GET", "/view", "NotBearer abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	var hit bool
	app := newTestApp(&stubValidator{err: coreauth.ErrUnauthenticated}, &hit)
	resp := doRequest(t, app, "GET", "/view", "Bearer bad")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, hit)
}

func TestAuthMiddlewareUpstreamUnavailable(t *testing.T) {
	app := newTestApp(&stubValidator{err: coreauth.ErrUpstreamUnavailable}, nil)
	resp := doRequest(t, app, "GET", "/view", "Bearer tok")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuthMiddlewareUpstreamError(t *testing.T) {
	app := newTestApp(&stubValidator{err: coreauth.ErrUpstream}, nil)
	resp := doRequest(t, app, "GET", "/view", "Bearer tok")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestGuardsByRole(t *testing.T) {
	tests := []struct {
		role       string
		viewCode   int
		manageCode int
	}{
		{"STUDENT", fiber.StatusOK, fiber.StatusForbidden},
		{"ROLE_STUDENT", fiber.StatusOK, fiber.StatusForbidden},
		{"ADMIN", fiber.StatusOK, fiber.StatusForbidden},
		{"PROFESSOR", fiber.StatusOK, fiber.StatusOK},
		{"ROLE_PROFESSOR", fiber.StatusOK, fiber.StatusOK},
		{"MODERATOR", fiber.StatusForbidden, fiber.StatusForbidden},
		{"", fiber.StatusForbidden, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		v := &stubValidator{claim: &coreauth.IdentityClaim{
			Email: "u@university.edu", Role: tt.role, UserID: "u-1",
		}}
		app := newTestApp(v, nil)

		resp := doRequest(t, app, "GET", "/view", "Bearer tok")
		assert.Equal(t, tt.viewCode, resp.StatusCode, "view as %q", tt.role)

		resp = doRequest(t, app, "POST", "/manage", "Bearer tok")
		assert.Equal(t, tt.manageCode, resp.StatusCode, "manage as %q", tt.role)
	}
}

// A denied manage request must never reach the handler (nor the store
// behind it).
func TestForbiddenStopsBeforeHandler(t *testing.T) {
	var hit bool
	v := &stubValidator{claim: &coreauth.IdentityClaim{Email: "s@u.edu", Role: "STUDENT", UserID: "s-1"}}
	app := newTestApp(v, &hit)

	resp := doRequest(t, app, "POST", "/manage", "Bearer tok")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, hit)
}
