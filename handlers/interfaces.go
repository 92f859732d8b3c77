package handlers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/handlers/mock_recognizer.go -package=mock_handlers

// TextRecognizer extracts text from an image on disk.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, imagePath string) (string, error)
}
