package util

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TempUpload is an uploaded file saved to disk for the length of one
// request. Callers defer Release right after a successful SaveUpload.
type TempUpload struct {
	Path string
}

func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir, prefix string) (*TempUpload, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), strings.ToLower(filepath.Ext(file.Filename)))
	path := filepath.Join(dir, name)
	if err := c.SaveFile(file, path); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	return &TempUpload{Path: path}, nil
}

// Release deletes the file. Failures are logged, never returned.
func (u *TempUpload) Release() {
	if u == nil || u.Path == "" {
		return
	}
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Warn("failed to clean up uploaded file", zap.String("path", u.Path), zap.Error(err))
		return
	}
	zap.L().Debug("cleaned up uploaded file", zap.String("path", u.Path))
}

// MimeType returns the part's declared content type without parameters.
func MimeType(file *multipart.FileHeader) string {
	ct := file.Header.Get(fiber.HeaderContentType)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
