package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mw "fitlife/internal/middleware"
	"fitlife/internal/service"
	"fitlife/internal/store/storetest"
)

var testSecret = []byte("test-secret")

// newTestRouter wires the full middleware/handler stack over an in-memory
// store, the same shape main builds.
func newTestRouter(st *storetest.Store) http.Handler {
	log := zap.NewNop()
	authHandler := NewAuthHandler(service.NewAuthService(st, log), testSecret, OAuthCredentials{}, false, log)
	bmiHandler := NewBMIHandler(service.NewBMIService(st, log))
	activityHandler := NewActivityHandler(service.NewActivityService(st, log))
	goalHandler := NewGoalHandler(service.NewGoalService(st, log))
	authMW := mw.NewAuthMiddleware(testSecret)

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/bmi", bmiHandler.List)
			pr.Post("/bmi", bmiHandler.Create)
			pr.Post("/fitness", activityHandler.Create)
			pr.Delete("/fitness", activityHandler.Delete)
			pr.Put("/fitness/goals", goalHandler.UpdateProgress)
		})
	})
	return r
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	h := newTestRouter(storetest.New())

	w := doJSON(t, h, http.MethodGet, "/api/bmi", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/bmi", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBMI_CreateThenList(t *testing.T) {
	st := storetest.New()
	h := newTestRouter(st)
	token := tokenFor(t, "user-a")

	w := doJSON(t, h, http.MethodPost, "/api/bmi", token,
		map[string]interface{}{"height": 170, "weight": 70, "notes": "first"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Message  string `json:"message"`
		RecordID string `json:"recordId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "BMI record saved successfully", created.Message)
	assert.NotEmpty(t, created.RecordID)

	w = doJSON(t, h, http.MethodGet, "/api/bmi", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 24.2, listed[0]["bmi"])
	assert.Equal(t, "Normal weight", listed[0]["category"])

	// A different user sees an empty list, not the other user's records.
	w = doJSON(t, h, http.MethodGet, "/api/bmi", tokenFor(t, "user-b"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestBMI_InvalidPayload(t *testing.T) {
	st := storetest.New()
	h := newTestRouter(st)

	w := doJSON(t, h, http.MethodPost, "/api/bmi", tokenFor(t, "user-a"),
		map[string]interface{}{"height": 10, "weight": 70})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Height must be at least 50cm")
	assert.Empty(t, st.BMIRecordsData, "validation failure must not persist anything")
}

func TestActivity_DeleteOwnerScoped(t *testing.T) {
	st := storetest.New()
	h := newTestRouter(st)
	owner := tokenFor(t, "user-a")

	w := doJSON(t, h, http.MethodPost, "/api/fitness", owner, map[string]interface{}{
		"activityType": "cardio", "name": "Run", "duration": 30, "calories": 300, "completed": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ActivityID string `json:"activityId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Non-owner delete: 404, record stays.
	w = doJSON(t, h, http.MethodDelete, "/api/fitness?id="+created.ActivityID, tokenFor(t, "user-b"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Activity not found or not authorized to delete")
	assert.Len(t, st.ActivitiesData, 1)

	// Owner delete succeeds, second delete is 404.
	w = doJSON(t, h, http.MethodDelete, "/api/fitness?id="+created.ActivityID, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, h, http.MethodDelete, "/api/fitness?id="+created.ActivityID, owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGoalProgress_NotFoundForMissingGoal(t *testing.T) {
	h := newTestRouter(storetest.New())

	w := doJSON(t, h, http.MethodPut, "/api/fitness/goals", tokenFor(t, "user-a"),
		map[string]interface{}{"id": "does-not-exist", "progress": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Goal not found or not authorized to update")
}

func TestRegisterLogin_EndToEnd(t *testing.T) {
	h := newTestRouter(storetest.New())

	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Jo", "email": "jo@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Duplicate registration conflicts.
	w = doJSON(t, h, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Jo", "email": "jo@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "jo@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	require.NotEmpty(t, loggedIn.Token)

	// The issued token opens the protected routes.
	w = doJSON(t, h, http.MethodGet, "/api/bmi", loggedIn.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "jo@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_ValidationMessage(t *testing.T) {
	h := newTestRouter(storetest.New())

	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "J", "email": "jo@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name must be at least 2 characters")
}
