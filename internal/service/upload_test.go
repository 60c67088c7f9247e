package service_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbmille/trivia-api/internal/config"
	"github.com/qbmille/trivia-api/internal/service"
)

func multipartImage(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	svc := service.NewUploadService(&config.UploadConfig{
		Dir:       dir,
		BaseURL:   "/uploads",
		MaxSizeMB: 1,
	})

	url, err := svc.SaveImage(multipartImage(t, "cover.png", []byte("fake png bytes")))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), saved)
}

func TestSaveImage_RejectsUnsupportedType(t *testing.T) {
	svc := service.NewUploadService(&config.UploadConfig{
		Dir:       t.TempDir(),
		BaseURL:   "/uploads",
		MaxSizeMB: 1,
	})

	_, err := svc.SaveImage(multipartImage(t, "script.exe", []byte("nope")))
	assert.ErrorIs(t, err, service.ErrUnsupportedType)
}

func TestSaveImage_RejectsTooLarge(t *testing.T) {
	svc := service.NewUploadService(&config.UploadConfig{
		Dir:       t.TempDir(),
		BaseURL:   "/uploads",
		MaxSizeMB: 1,
	})

	big := bytes.Repeat([]byte("a"), 2*1024*1024)
	_, err := svc.SaveImage(multipartImage(t, "big.jpg", big))
	assert.ErrorIs(t, err, service.ErrFileTooLarge)
}
