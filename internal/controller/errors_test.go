package controller

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/util"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", util.NewValidationError("please select exactly two career paths"), http.StatusBadRequest},
		{"unknown level", fmt.Errorf("%w: expert", catalog.ErrLevelNotFound), http.StatusBadRequest},
		{"bad credentials", util.ErrInvalidCredentials, http.StatusUnauthorized},
		{"already selected", util.ErrAlreadySelected, http.StatusConflict},
		{"wrapped locked video", fmt.Errorf("complete: %w", util.ErrVideoLocked), http.StatusConflict},
		{"invalid transition", util.ErrInvalidTransition, http.StatusConflict},
		{"profile missing", util.ErrProfileMissing, http.StatusPreconditionFailed},
		{"dialogue not started", util.ErrDialogueNotStarted, http.StatusPreconditionFailed},
		{"unknown career", fmt.Errorf("%w: %q", catalog.ErrCareerNotFound, "Astronaut"), http.StatusNotFound},
		{"store failure", fmt.Errorf("%w: connection reset", util.ErrRemoteFailure), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			handleError(ctx, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	_, ok := currentUserID(ctx)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(w)
	ctx.Set(util.ContextUserKey, &util.Claims{UserID: "user-1"})
	id, ok := currentUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}

func TestCareerParamKeepsSlash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	router := gin.New()
	router.GET("/careers/insights/*career", func(ctx *gin.Context) {
		got = careerParam(ctx)
	})

	tests := []struct {
		path string
		want string
	}{
		{path: "/careers/insights/Software%20Engineer", want: "Software Engineer"},
		{path: "/careers/insights/UX%2FUI%20Designer", want: "UX/UI Designer"},
		{path: "/careers/insights/UX/UI%20Designer", want: "UX/UI Designer"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got = ""
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}
