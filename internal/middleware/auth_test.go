package middleware

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityRecorder struct {
	seen chan string
}

func (r *activityRecorder) UpdateLastSeen(userID string) error {
	r.seen <- userID
	return nil
}

func newAuthRouter(cfg *config.Config, repo UserActivityRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), ActivityMiddleware(repo), func(c *gin.Context) {
		util.Success(c, gin.H{"user_id": util.GetUserFromContext(c).UserID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"

	valid, err := util.GenerateJWT("user-1", "a@example.com", cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	foreign, err := util.GenerateJWT("user-1", "a@example.com", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &activityRecorder{seen: make(chan string, 1)}
			r := newAuthRouter(cfg, recorder)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				select {
				case id := <-recorder.seen:
					assert.Equal(t, "user-1", id)
				case <-time.After(time.Second):
					t.Fatal("last seen was not updated")
				}
			}
		})
	}
}
