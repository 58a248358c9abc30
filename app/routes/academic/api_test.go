package academic

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amiradha/Major-Project/app/config"
	"github.com/Amiradha/Major-Project/app/database"
	"github.com/Amiradha/Major-Project/app/models"
	"github.com/Amiradha/Major-Project/app/routes/auth"
)

type fakeUserStore struct {
	users    []models.User
	sessions map[string]*models.Session
}

var _ database.UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{sessions: map[string]*models.Session{}}
}

func (f *fakeUserStore) UserByCredentials(username, password string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username && f.users[i].Password == password {
			return &f.users[i], nil
		}
	}
	return nil, database.ErrInvalidCredentials
}

func (f *fakeUserStore) CreateSession(session *models.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeUserStore) SessionByID(id string) (*models.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, database.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeUserStore) DeleteSession(id string) error {
	delete(f.sessions, id)
	return nil
}

func newTestApp(t *testing.T, store database.AcademicStore) (*fiber.App, *http.Cookie) {
	t.Helper()
	config.AppConfig = &config.Config{SessionSecret: "test-secret"}

	users := newFakeUserStore()
	session := &models.Session{ID: auth.NewSessionID(), UserID: "u1", ExpiresAt: auth.SessionExpiry()}
	require.NoError(t, users.CreateSession(session))

	token, err := auth.GenerateSessionToken(session.ID, session.ExpiresAt)
	require.NoError(t, err)
	cookie := &http.Cookie{Name: "session_token", Value: token}

	app := fiber.New()
	RegisterRoutes(app, store, users)
	return app, cookie
}

func getJSON(t *testing.T, app *fiber.App, url string, cookie *http.Cookie) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestLookupEndpointsRequireSession(t *testing.T) {
	app, _ := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/years?program=B.TECH+CS", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, payload, "error")
}

func TestGetYearsAPI(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/years?program=B.TECH+CS", cookie)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, []interface{}{float64(2023)}, payload["years"])
}

func TestGetYearsAPIInvalidProgram(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/years?program=B.TECH+EE", cookie)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Invalid program", payload["error"])
}

func TestGetYearsAPIStoreFault(t *testing.T) {
	store := newFixtureStore()
	store.failErr = errStoreDown
	app, cookie := newTestApp(t, store)

	status, payload := getJSON(t, app, "/api/academic/years?program=B.TECH+CS", cookie)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error", payload["status"])
	// internal detail never leaks
	assert.Equal(t, "Internal server error", payload["error"])
}

func TestGetCoursesAPI(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/courses?program=B.TECH+CS&year=2023", cookie)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, []interface{}{"CS301"}, payload["courses"])
}

func TestGetCoursesAPIBadYear(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/courses?program=B.TECH+CS&year=banana", cookie)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error", payload["status"])
}

func TestGetComponentsAPI(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/components?program=B.TECH+CS&course=CS301", cookie)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, []interface{}{"CT1", "EXT"}, payload["components"])
}

func TestGetComponentsAPIEmptyCourse(t *testing.T) {
	app, cookie := newTestApp(t, newFixtureStore())

	status, payload := getJSON(t, app, "/api/academic/components?program=B.TECH+CS&course=ZZ999", cookie)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, payload["components"])
}

func TestPagesRedirectWithoutSession(t *testing.T) {
	app, _ := newTestApp(t, newFixtureStore())

	req := httptest.NewRequest(http.MethodGet, "/academic/results", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}
