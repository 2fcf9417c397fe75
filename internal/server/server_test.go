package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/config"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/database"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cat, err := catalog.Load()
	require.NoError(t, err)

	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: "8080",
		JWTSecret:  "test-secret",
	}
	return New(cfg, db, nil, nil, cat)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, srv *Server) string {
	t.Helper()
	w := doJSON(t, srv, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":            "Asha Rao",
		"email":           "asha@example.com",
		"password":        "hunter22",
		"username":        "asha",
		"age":             27,
		"gender":          "Female",
		"height_cm":       165,
		"weight_kg":       58,
		"activity_level":  "Sedentary",
		"diet_preference": "Vegetarian",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	srv := setupServer(t)
	w := doJSON(t, srv, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginAndProfileFlow(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, "GET", "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha")

	w = doJSON(t, srv, "GET", "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "GET", "/api/v1/profile/metrics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m struct {
		BMI         *float64 `json:"bmi"`
		BMICategory string   `json:"bmi_category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.NotNil(t, m.BMI)
	assert.InDelta(t, 21.3, *m.BMI, 0.01)
	assert.Equal(t, "Normal", m.BMICategory)
}

func TestPlanEndpoints(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "GET", "/api/v1/plans/workout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Push-up")

	w = doJSON(t, srv, "GET", "/api/v1/plans/diet?budget=1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, "GET", "/api/v1/plans/diet?strategy=hybrid&budget=1", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, "GET", "/api/v1/plans/groups/back-day-1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pull-up")

	// No S3 config in tests, so animation URLs are unresolvable.
	w = doJSON(t, srv, "GET", "/api/v1/plans/exercises/Push-up/animation", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTrackingFlow(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv)

	// Mark the same exercise done twice; both appends succeed.
	for i := 0; i < 2; i++ {
		w := doJSON(t, srv, "POST", "/api/v1/logs/exercises/Push-up/complete", token, nil)
		require.Equal(t, http.StatusCreated, w.Code, "attempt %d: %s", i, w.Body.String())
	}

	w := doJSON(t, srv, "GET", "/api/v1/progress/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Count         int     `json:"count"`
		TotalCalories float64 `json:"total_calories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 90.0, summary.TotalCalories)

	w = doJSON(t, srv, "GET", "/api/v1/progress/weekly", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var weekly struct {
		Series []struct {
			Date          string  `json:"date"`
			TotalCalories float64 `json:"total_calories"`
			ExerciseCount int     `json:"exercise_count"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weekly))
	require.Len(t, weekly.Series, 1)
	assert.Equal(t, 2, weekly.Series[0].ExerciseCount)

	w = doJSON(t, srv, "POST", "/api/v1/logs/exercises/Moon%20Walk/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateRegistrationConflict(t *testing.T) {
	srv := setupServer(t)
	registerUser(t, srv)

	w := doJSON(t, srv, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Asha Clone",
		"email":    "asha@example.com",
		"password": "hunter22",
		"username": "asha2",
		"age":      30,
		"gender":   "Female",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
