package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transvert-logistics/logger"
	"transvert-logistics/middleware"
	logModel "transvert-logistics/models/log"
	userModel "transvert-logistics/models/user"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.User{}, &logModel.Log{}))

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	controller := NewAuthController(db, asyncLogger)

	app := fiber.New()
	app.Post("/api/register", controller.Register)
	app.Post("/api/login", controller.Login)
	app.Get("/api/auth/profile", middleware.Protected(), controller.Profile)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestRegisterAndLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		`{"username":"ana","password":"secreta123","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// the stored hash is never the raw password
	var account userModel.User
	require.NoError(t, db.Where("username = ?", "ana").First(&account).Error)
	assert.NotEqual(t, "secreta123", account.PasswordHash)
	assert.False(t, account.IsStaff)

	resp, payload := postJSON(t, app, "/api/login",
		`{"username":"ana","password":"secreta123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, payload["token"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "/panel-cliente", data["redirect"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		`{"username":"ana","password":"secreta123"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/register",
		`{"username":"ana","password":"otraclave456"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		`{"username":"ana","password":"secreta123"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := postJSON(t, app, "/api/login",
		`{"username":"ana","password":"equivocada"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Usuario o contraseña incorrectos", payload["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/login",
		`{"username":"nadie","password":"loquesea"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRedirectByRole(t *testing.T) {
	staff := &userModel.User{Username: "s", IsStaff: true}
	super := &userModel.User{Username: "r", IsStaff: true, IsSuperuser: true}
	customer := &userModel.User{Username: "c"}

	assert.Equal(t, "/staff_panel", redirectFor(staff))
	assert.Equal(t, "/superadmin_panel", redirectFor(super))
	assert.Equal(t, "/panel-cliente", redirectFor(customer))
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := postJSON(t, app, "/api/register",
		`{"username":"ana","password":"secreta123"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, payload := postJSON(t, app, "/api/login",
		`{"username":"ana","password":"secreta123"}`)
	token := payload["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	data := profile["data"].(map[string]interface{})
	assert.Equal(t, "ana", data["username"])
}
