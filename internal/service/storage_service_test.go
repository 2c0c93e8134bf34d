package service

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/util"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "reports/u1/progress.xlsx", want: "reports/u1/progress.xlsx"},
		{key: "/reports//u1/progress.xlsx", want: "reports/u1/progress.xlsx"},
		{key: `reports\u1\progress.xlsx`, want: "reports/u1/progress.xlsx"},
		{key: "../etc/passwd", wantErr: true},
		{key: "reports/../../x", wantErr: true},
		{key: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cleanKey(tt.key)
			if tt.wantErr {
				assert.True(t, errors.Is(err, util.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalStorageUploadAndDelete(t *testing.T) {
	root := t.TempDir()
	svc := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: root}})
	assert.Equal(t, util.StorageLocal, svc.Store.Name())

	body := "hello report"
	url, err := svc.Upload(context.Background(), "reports/u1/a.txt", strings.NewReader(body), int64(len(body)), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/reports/u1/a.txt", url)

	data, err := os.ReadFile(filepath.Join(root, "reports", "u1", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	entries, err := os.ReadDir(filepath.Join(root, "reports", "u1"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Delete(context.Background(), "reports/u1/a.txt"))
	_, err = os.Stat(filepath.Join(root, "reports", "u1", "a.txt"))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.Upload(context.Background(), "../escape.txt", strings.NewReader(body), int64(len(body)), "text/plain")
	assert.True(t, errors.Is(err, util.ErrValidation))
}

func TestStorageFallsBackToLocal(t *testing.T) {
	svc := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:          util.StorageMinio,
		MinioEndpoint: "bad endpoint with spaces",
		LocalPath:     t.TempDir(),
	}})
	assert.Equal(t, util.StorageLocal, svc.Store.Name())
}
