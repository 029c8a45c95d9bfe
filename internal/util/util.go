package util

import (
	"path/filepath"

	"github.com/google/uuid"
)

// RandomFilename returns a unique file path in dir with the extension, suitable for testing
func RandomFilename(dir, ext string) string {
	return filepath.Join(dir, uuid.New().String()+ext)
}
