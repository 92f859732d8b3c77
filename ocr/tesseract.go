// Package ocr recognizes text in images with an external tesseract engine.
package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

const (
	DefaultBinary   = "tesseract"
	DefaultLanguage = "eng"
)

// Tesseract shells out to the tesseract CLI. The zero value uses the
// binary on PATH and English.
type Tesseract struct {
	Binary   string
	Language string
}

func New(binary, language string) *Tesseract {
	return &Tesseract{Binary: binary, Language: language}
}

// RecognizeText returns the trimmed text tesseract reads from imagePath.
func (t *Tesseract) RecognizeText(ctx context.Context, imagePath string) (string, error) {
	binary, lang := t.Binary, t.Language
	if binary == "" {
		binary = DefaultBinary
	}
	if lang == "" {
		lang = DefaultLanguage
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, imagePath, "stdout", "-l", lang)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("OCR failed",
			"image", imagePath,
			"language", lang,
			"stderr", strings.TrimSpace(stderr.String()),
			"error", err)
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
