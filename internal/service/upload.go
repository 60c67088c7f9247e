package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/qbmille/trivia-api/internal/config"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type UploadService struct {
	conf *config.UploadConfig
}

func NewUploadService(conf *config.UploadConfig) *UploadService {
	return &UploadService{
		conf: conf,
	}
}

// SaveImage stores an uploaded image under the configured directory and
// returns the public URL it will be served from.
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > s.conf.MaxSizeMB*1024*1024 {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.conf.Dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("file.Open -> %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.conf.Dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return path.Join(s.conf.BaseURL, name), nil
}
