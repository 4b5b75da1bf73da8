package feedback

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoReport reports an export attempted before any feedback report
// artifact exists. It is distinct from a filesystem failure during the copy
// so the caller can phrase the two differently.
var ErrNoReport = errors.New("no feedback report exists yet")

// Export copies the report artifact at sourcePath to destPath byte for byte.
// The source is left in place; export is non-destructive.
func Export(sourcePath, destPath string) error {
	src, err := os.Open(sourcePath)
	if os.IsNotExist(err) {
		return ErrNoReport
	}
	if err != nil {
		return fmt.Errorf("opening feedback report: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating export destination: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying feedback report: %w", err)
	}
	return dst.Close()
}
