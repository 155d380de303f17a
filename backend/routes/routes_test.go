package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eduplatform/backend/config"
	"eduplatform/backend/mirror"
	"eduplatform/backend/routes"
	"eduplatform/backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret: "testsecret",
		DemoMode:  true,
	}
	st := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    mirror.NewMemoryMirror(),
		LocalAuth: true,
		Seed:      true,
	})
	st.Hydrate(store.GuestKey)

	app := fiber.New()
	routes.SetupRoutes(app, st, nil, store.DefaultCatalog(), cfg)
	return app, st, cfg
}

// login signs in over HTTP and returns the bearer token.
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": "anything"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return "Bearer " + token
}

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, "demo", result["mode"])
}

func TestLoginAndMe(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&user)
	assert.Equal(t, "student-1", user["id"])
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Error responses share one envelope.
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Unauthorized", result["message"])
}

func TestRegisterValidation(t *testing.T) {
	app, _, _ := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"name": "X", "email": "not-an-email", "password": "short"})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListCoursesAnnotated(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	req := httptest.NewRequest("GET", "/api/courses/", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	require.NotEmpty(t, courses)

	for _, course := range courses {
		if course["id"].(float64) == 1 {
			assert.Equal(t, true, course["enrolled"])
			assert.Equal(t, float64(67), course["progress"])
		}
	}
}

func TestEnrollAndCompleteLessonFlow(t *testing.T) {
	app, st, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	body, _ := json.Marshal(map[string]int{"courseId": 3})
	req := httptest.NewRequest("POST", "/api/enrollments/free", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, st.IsEnrolled(3))

	req = httptest.NewRequest("POST", "/api/courses/3/lessons/1/complete", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(17), result["progress"]) // 1 of 6 lessons
}

func TestCompleteLessonRequiresEnrollment(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	req := httptest.NewRequest("POST", "/api/courses/3/lessons/1/complete", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotificationsEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	req := httptest.NewRequest("GET", "/api/notifications/", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(3), result["unreadCount"])
}

func TestDiscountValidateEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	body, _ := json.Marshal(map[string]string{"code": "welcome50"})
	req := httptest.NewRequest("POST", "/api/discounts/validate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ = json.Marshal(map[string]string{"code": "NOPE"})
	req = httptest.NewRequest("POST", "/api/discounts/validate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentCannotCreateDiscount(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")

	body, _ := json.Marshal(map[string]interface{}{"code": "NEW15", "discount": 15, "maxUses": 10})
	req := httptest.NewRequest("POST", "/api/discounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminCanListUsers(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app, "admin@eduplatform.com")

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(3), result["total"])
}

func TestStaleTokenRejectedAfterLogout(t *testing.T) {
	app, st, _ := newTestApp(t)
	token := login(t, app, "ron.richards@gmail.com")
	st.Logout()

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
