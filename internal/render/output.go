package render

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// EnsureOutputDir creates the output directory if it does not exist
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// UniqueFilename returns a timestamped filename with a short random suffix.
// The suffix keeps two documents generated in the same second apart. The
// extension is used as given, including its leading dot.
func UniqueFilename(base, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s%s", base, timestamp, suffix, extension)
}
