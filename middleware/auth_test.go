package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	userModel "transvert-logistics/models/user"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/protected", Protected(), ok)
	app.Get("/staff", RequireStaff(), ok)
	app.Get("/superadmin", RequireSuperuser(), ok)
	return app
}

func tokenFor(t *testing.T, u *userModel.User) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(u)
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestProtectedRejectsMissingOrBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/protected", ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/protected", "not-a-token"))
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	token := tokenFor(t, &userModel.User{ID: 1, Username: "ana"})
	assert.Equal(t, http.StatusOK, get(t, app, "/protected", token))
}

func TestRoleGates(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	customer := tokenFor(t, &userModel.User{ID: 1, Username: "c"})
	staff := tokenFor(t, &userModel.User{ID: 2, Username: "s", IsStaff: true})
	super := tokenFor(t, &userModel.User{ID: 3, Username: "r", IsStaff: true, IsSuperuser: true})

	assert.Equal(t, http.StatusForbidden, get(t, app, "/staff", customer))
	assert.Equal(t, http.StatusOK, get(t, app, "/staff", staff))
	assert.Equal(t, http.StatusOK, get(t, app, "/staff", super))

	assert.Equal(t, http.StatusForbidden, get(t, app, "/superadmin", customer))
	assert.Equal(t, http.StatusForbidden, get(t, app, "/superadmin", staff))
	assert.Equal(t, http.StatusOK, get(t, app, "/superadmin", super))
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token := tokenFor(t, &userModel.User{ID: 1, Username: "ana"})

	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/protected", token))
}
