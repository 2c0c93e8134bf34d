package app

import (
	"bytes"
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/config"
	"career_path_backend/internal/testutil"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t     *testing.T
	app   *App
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: gin.TestMode},
		JWT:       config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage:   config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
		Learning:  config.LearningConfig{SessionTTLHours: 1},
	}
	application := New(cfg, testutil.NewDB(t), nil)
	t.Cleanup(func() { application.Shutdown(context.Background()) })

	return &testServer{t: t, app: application}
}

func (s *testServer) do(method, path string, body any) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *testServer) login(email, username string) {
	s.t.Helper()
	code, _ := s.do(http.MethodPost, "/api/register", map[string]any{
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
		"username":        username,
		"fullName":        "Test Student",
		"age":             20,
		"educationLevel":  "undergraduate",
	})
	require.Equal(s.t, http.StatusCreated, code)

	code, env := s.do(http.MethodPost, "/api/login", map[string]any{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(s.t, http.StatusOK, code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(s.t, data.Token)
	s.token = data.Token
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"database":"up"`)

	code, _ = s.do(http.MethodGet, "/api/careers", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/api/careers/insights/"+url.PathEscape(string(catalog.DataScientist)), nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/api/careers/insights/Astronaut", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// 名称带 "/" 的职业同样由处理器应答
	code, env = s.do(http.MethodGet, "/api/careers/insights/"+url.PathEscape(string(catalog.UXUIDesigner)), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, env.Message, string(catalog.UXUIDesigner))

	code, _ = s.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterErrors(t *testing.T) {
	s := newTestServer(t)
	s.login("first@example.com", "first")

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{
			name: "duplicate email",
			body: map[string]any{"email": "first@example.com", "password": "secret123", "confirmPassword": "secret123", "username": "other", "age": 20},
			want: http.StatusConflict,
		},
		{
			name: "password mismatch",
			body: map[string]any{"email": "new@example.com", "password": "secret123", "confirmPassword": "secret124", "username": "new", "age": 20},
			want: http.StatusBadRequest,
		},
		{
			name: "too young",
			body: map[string]any{"email": "kid@example.com", "password": "secret123", "confirmPassword": "secret123", "username": "kid", "age": 10},
			want: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: map[string]any{"email": "x@example.com"},
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := s.do(http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, tt.want, code)
		})
	}

	code, _ := s.do(http.MethodPost, "/api/login", map[string]any{"email": "first@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSelectionAndLearningFlow(t *testing.T) {
	s := newTestServer(t)
	s.login("student@example.com", "student")

	code, _ := s.do(http.MethodGet, "/api/careers/selection", nil)
	assert.Equal(t, http.StatusPreconditionFailed, code)

	code, _ = s.do(http.MethodPost, "/api/careers/selection", map[string]any{
		"careers": []string{string(catalog.SoftwareEngineer)},
		"mode":    "manual",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	selectBody := map[string]any{
		"careers": []string{string(catalog.SoftwareEngineer), string(catalog.DataScientist)},
		"mode":    "manual",
	}
	code, _ = s.do(http.MethodPost, "/api/careers/selection", selectBody)
	require.Equal(t, http.StatusCreated, code)

	code, _ = s.do(http.MethodPost, "/api/careers/selection", selectBody)
	assert.Equal(t, http.StatusConflict, code)

	code, env := s.do(http.MethodPost, "/api/tests/finalize", map[string]any{
		"career":  string(catalog.SoftwareEngineer),
		"answers": []string{},
	})
	require.Equal(t, http.StatusCreated, code)
	var outcome struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.Equal(t, 0, outcome.Score)
	assert.Equal(t, string(catalog.Beginner), outcome.Level)

	modulePath := "/api/learning/modules/" + url.PathEscape(string(catalog.SoftwareEngineer))
	code, env = s.do(http.MethodGet, modulePath, nil)
	require.Equal(t, http.StatusOK, code)
	var module struct {
		Level    string `json:"level"`
		Progress int    `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &module))
	assert.Equal(t, string(catalog.Beginner), module.Level)
	assert.Equal(t, 0, module.Progress)

	code, _ = s.do(http.MethodGet, modulePath+"?level=expert", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/learning/videos/se_b_2/complete", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/api/learning/videos/se_b_1/quiz", map[string]any{"answer": "anything"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/api/learning/videos/se_b_1/complete", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/learning/videos/unknown/complete", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = s.do(http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Data)

	code, env = s.do(http.MethodPost, "/api/reports/progress", nil)
	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), ".xlsx")
}

func TestDialogueRoutes(t *testing.T) {
	s := newTestServer(t)
	s.login("talker@example.com", "talker")

	code, _ := s.do(http.MethodGet, "/api/dialogue", nil)
	assert.Equal(t, http.StatusPreconditionFailed, code)

	code, env := s.do(http.MethodPost, "/api/dialogue/start", nil)
	require.Equal(t, http.StatusOK, code)
	var view struct {
		State   string   `json:"state"`
		Options []string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.NotEmpty(t, view.Options)

	code, _ = s.do(http.MethodPost, "/api/dialogue/choose", map[string]any{"option": "Not an option"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/dialogue/choose", map[string]any{"option": view.Options[0]})
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodPost, "/api/dialogue/ask", map[string]any{"question": "What salary can I expect?"})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "reply")

	code, _ = s.do(http.MethodPost, "/api/dialogue/confirm", nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestMemorySessionsAreSwept(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s.app.sweeper)
	assert.Len(t, s.app.sweeper.Jobs(), 1)
}
