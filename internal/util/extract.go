package util

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// ExtractPDFText reads the text layer of every page. A PDF without one
// (a scanned resume) falls back to OCR.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		fullText.WriteString(text)
		fullText.WriteString("\n")
	}

	result := strings.TrimSpace(fullText.String())
	if result != "" {
		return result, nil
	}

	zap.L().Info("pdf has no text layer, falling back to OCR", zap.String("path", path))
	return ExtractPDFOCR(path)
}

// ExtractPDFOCR extracts text from rendered pages with tesseract.
func ExtractPDFOCR(path string) (string, error) {
	if err := checkTesseract(); err != nil {
		return "", fmt.Errorf("tesseract check failed: %w", err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := ocrPage(doc, n)
		if err != nil {
			lastErr = err
			zap.L().Warn("ocr page failed", zap.Int("page", n+1), zap.Error(err))
			continue
		}
		if len(pageText) > 0 {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text via OCR: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or images are unreadable)")
	}
	return result, nil
}

func ocrPage(doc *fitz.Document, n int) (string, error) {
	img, err := doc.Image(n)
	if err != nil {
		return "", fmt.Errorf("page %d: failed to extract image: %w", n+1, err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("page %d: failed to create temp file: %w", n+1, err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := savePNG(tmpPath, img); err != nil {
		return "", fmt.Errorf("page %d: failed to save PNG: %w", n+1, err)
	}

	out, err := exec.Command("tesseract", tmpPath, "stdout", "-l", "eng").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("page %d: tesseract error: %w, output: %s", n+1, err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract() error {
	out, err := exec.Command("tesseract", "-v").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
