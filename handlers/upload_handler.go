package handlers

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anjiri1684/error_paper/utils"
	"github.com/gofiber/fiber/v2"
)

type OCRResponse struct {
	Text string `json:"text"`
}

type OCRHandler struct {
	recognizer TextRecognizer
	tempDir    string
}

// NewOCRHandler stores uploads under tempDir, or the system temp directory
// when it is empty.
func NewOCRHandler(recognizer TextRecognizer, tempDir string) *OCRHandler {
	return &OCRHandler{recognizer: recognizer, tempDir: tempDir}
}

// Recognize reads text from the multipart "image" upload. The upload only
// lives on disk for the duration of the request.
func (h *OCRHandler) Recognize(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return utils.ValidationError("image file is required")
	}

	tmp, err := os.CreateTemp(h.tempDir, "ocr-*"+filepath.Ext(file.Filename))
	if err != nil {
		return utils.StorageError("Failed to store uploaded image", err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove OCR upload", "path", path, "error", err)
		}
	}()

	if err := c.SaveFile(file, path); err != nil {
		return utils.StorageError("Failed to store uploaded image", err)
	}

	text, err := h.recognizer.RecognizeText(c.UserContext(), path)
	if err != nil {
		return utils.AdapterError("Failed to recognize text", err)
	}
	return respond(c, fiber.StatusOK, OCRResponse{Text: text}, "")
}
