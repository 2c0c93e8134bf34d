package service

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// 报表只对本人可见，远程存储返回带签名的临时链接
const signedURLExpiry = 24 * time.Hour

// ObjectStore 生成文件（目前只有进度报表）的存放位置
type ObjectStore interface {
	Name() string
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
}

// cleanKey 统一为 a/b/c.xlsx 形式，拒绝跳出存储根目录的 key
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(key, "..") {
		return "", util.NewValidationError(fmt.Sprintf("invalid object key %q", key))
	}
	return cleaned, nil
}

// LocalStore 写入本地目录，通过 /uploads 静态路由访问
type LocalStore struct {
	Root string
}

func (s *LocalStore) Name() string { return util.StorageLocal }

// Put 先写临时文件再改名，读者不会看到写了一半的报表
func (s *LocalStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	dst := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (s *LocalStore) Remove(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
}

func (s *LocalStore) URL(ctx context.Context, key string) (string, error) {
	return "/uploads/" + key, nil
}

// MinioStore MinIO / S3 兼容存储
type MinioStore struct {
	Bucket string
	Client *minio.Client
}

func NewMinioStore(ctx context.Context, cfg *config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinioBucket, err)
		}
	}
	return &MinioStore{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (s *MinioStore) Name() string { return util.StorageMinio }

func (s *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.Client.PutObject(ctx, s.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Remove(ctx context.Context, key string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{})
}

func (s *MinioStore) URL(ctx context.Context, key string) (string, error) {
	u, err := s.Client.PresignedGetObject(ctx, s.Bucket, key, signedURLExpiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// OSSStore 阿里云 OSS
type OSSStore struct {
	Bucket *oss.Bucket
}

func NewOSSStore(cfg *config.StorageConfig) (*OSSStore, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSStore{Bucket: bucket}, nil
}

func (s *OSSStore) Name() string { return util.StorageOSS }

func (s *OSSStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return s.Bucket.PutObject(key, body, oss.ContentType(contentType), oss.WithContext(ctx))
}

func (s *OSSStore) Remove(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSStore) URL(ctx context.Context, key string) (string, error) {
	return s.Bucket.SignURL(key, oss.HTTPGet, int64(signedURLExpiry/time.Second))
}

type StorageService struct {
	Store ObjectStore
}

// NewStorageService 远程存储初始化失败时退回本地存储
func NewStorageService(cfg *config.Config) *StorageService {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var store ObjectStore
	var err error
	switch cfg.Storage.Type {
	case util.StorageMinio:
		store, err = NewMinioStore(ctx, &cfg.Storage)
	case util.StorageOSS:
		store, err = NewOSSStore(&cfg.Storage)
	}
	if err != nil {
		logger.Log.Warn("Remote storage unavailable, falling back to local",
			zap.String("type", cfg.Storage.Type),
			zap.Error(err),
		)
		store = nil
	}

	if store == nil {
		store = &LocalStore{Root: cfg.Storage.LocalPath}
	}
	logger.Log.Info("Storage initialized", zap.String("store", store.Name()))
	return &StorageService{Store: store}
}

// Upload 保存对象并返回访问地址
func (s *StorageService) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := s.Store.Put(ctx, key, body, size, contentType); err != nil {
		return "", fmt.Errorf("put %s to %s: %w", key, s.Store.Name(), err)
	}
	return s.Store.URL(ctx, key)
}

func (s *StorageService) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	return s.Store.Remove(ctx, key)
}
