package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "local", cfg.ResumeStorage)
	assert.Equal(t, "resumes", cfg.MinioBucket)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("RESUME_STORAGE", "minio")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.Equal(t, "minio", cfg.ResumeStorage)
	assert.True(t, cfg.MinioUseSSL)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 8000, cfg.Port)
}
