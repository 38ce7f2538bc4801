package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ResumeStorage persists uploaded resumes. The returned path is what gets
// stored on the application record.
type ResumeStorage interface {
	Save(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error)
}

// storedName prefixes a random token so that client-supplied filenames can
// neither collide nor escape the storage root.
func storedName(filename string) string {
	return uuid.NewString() + "-" + filepath.Base(filename)
}

type localResumeStorage struct {
	dir string
}

// NewLocalResumeStorage stores resumes under dir, which is also served
// statically at /uploads.
func NewLocalResumeStorage(dir string) (ResumeStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localResumeStorage{dir: dir}, nil
}

func (s *localResumeStorage) Save(_ context.Context, filename, _ string, reader io.Reader, _ int64) (string, error) {
	name := storedName(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

type minioResumeStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioResumeStorage stores resumes in an object storage bucket, creating
// the bucket when missing.
func NewMinioResumeStorage(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (ResumeStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	found, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &minioResumeStorage{client: client, bucket: bucket}, nil
}

func (s *minioResumeStorage) Save(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	name := storedName(filename)
	_, err := s.client.PutObject(ctx, s.bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.bucket + "/" + name, nil
}
