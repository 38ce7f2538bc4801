package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalResumeStorage_Save(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalResumeStorage(dir)
	assert.NoError(t, err)

	path, err := storage.Save(context.Background(), "resume.pdf", "application/pdf",
		strings.NewReader("%PDF-1.4 content"), 16)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, "-resume.pdf"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(data))
}

func TestLocalResumeStorage_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalResumeStorage(dir)
	assert.NoError(t, err)

	first, err := storage.Save(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("a"), 1)
	assert.NoError(t, err)
	second, err := storage.Save(context.Background(), "resume.pdf", "application/pdf", strings.NewReader("b"), 1)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalResumeStorage_StripsClientPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalResumeStorage(dir)
	assert.NoError(t, err)

	path, err := storage.Save(context.Background(), "../../etc/resume.pdf", "application/pdf",
		strings.NewReader("x"), 1)
	assert.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestNewLocalResumeStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewLocalResumeStorage(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
