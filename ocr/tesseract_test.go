package ocr

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTesseract writes a shell script that stands in for the engine.
func fakeTesseract(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "tesseract")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestTesseract_RecognizeText(t *testing.T) {
	// Echo the arguments back so the invocation can be checked.
	bin := fakeTesseract(t, `printf '  %s|%s|%s|%s\n\n' "$1" "$2" "$3" "$4"`)

	got, err := New(bin, "deu").RecognizeText(context.Background(), "/tmp/page.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/page.png|stdout|-l|deu", got)
}

func TestTesseract_DefaultLanguage(t *testing.T) {
	bin := fakeTesseract(t, `echo "$4"`)

	got, err := (&Tesseract{Binary: bin}).RecognizeText(context.Background(), "img.png")
	require.NoError(t, err)
	assert.Equal(t, "eng", got)
}

func TestTesseract_Failure(t *testing.T) {
	bin := fakeTesseract(t, "echo 'Error opening data file' >&2\nexit 1\n")

	_, err := New(bin, "eng").RecognizeText(context.Background(), "img.png")
	require.Error(t, err)
	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestTesseract_MissingBinary(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), "eng").RecognizeText(context.Background(), "img.png")
	assert.Error(t, err)
}
