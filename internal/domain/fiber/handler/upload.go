package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	maxResumeSize int64 = 5 * 1024 * 1024
	maxAudioSize  int64 = 10 * 1024 * 1024
)

type uploadRule struct {
	field   string
	prefix  string
	maxSize int64
	accept  func(mime, ext string) bool
	reject  string
}

var (
	resumeUpload = uploadRule{
		field:   "resume",
		prefix:  "resume",
		maxSize: maxResumeSize,
		accept: func(mime, ext string) bool {
			return mime == "application/pdf" || ext == ".pdf"
		},
		reject: "Only PDF files are allowed",
	}
	audioUpload = uploadRule{
		field:   "audio",
		prefix:  "audio",
		maxSize: maxAudioSize,
		accept: func(mime, _ string) bool {
			return strings.HasPrefix(mime, "audio/")
		},
		reject: "Invalid file type. Only audio files are allowed.",
	}
)

// receiveUpload validates the multipart file named by rule and writes it to
// dir. The caller must Release the result.
func receiveUpload(c *fiber.Ctx, dir string, rule uploadRule) (*util.TempUpload, error) {
	file, err := c.FormFile(rule.field)
	if err != nil {
		return nil, apperror.Validation(apperror.CodeMissingInput, fmt.Sprintf("Please upload a %s file", rule.field))
	}
	if file.Size > rule.maxSize {
		return nil, apperror.Validation(apperror.CodeInvalidInput, fmt.Sprintf("%s file size is too large (max %dMB)", rule.field, rule.maxSize>>20))
	}
	if !rule.accept(util.MimeType(file), strings.ToLower(filepath.Ext(file.Filename))) {
		return nil, apperror.Validation(apperror.CodeInvalidInput, rule.reject)
	}
	return util.SaveUpload(c, file, dir, rule.prefix)
}
