package processor

import (
	"fmt"
	"os"
	"path/filepath"
)

// archive moves a processed file into the flat processed directory. An
// existing file with the same name is replaced, matching rename semantics.
func (p *implProcessor) archive(filePath string) (string, error) {
	dest := filepath.Join(p.processedDir, filepath.Base(filePath))

	if err := os.Rename(filePath, dest); err != nil {
		// Rename fails across filesystems; fall back to copy+remove
		if copyErr := copyFile(filePath, dest); copyErr != nil {
			return "", fmt.Errorf("move to processed: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("remove original after copy: %w", err)
		}
	}

	return dest, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
