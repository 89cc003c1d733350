package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadTextFile reads the file at path as UTF-8 text. Files that are not
// valid UTF-8 are decoded as ISO-8859-1, which accepts any byte sequence, so
// legacy exports still load instead of erroring out.
func ReadTextFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s as iso-8859-1: %w", path, err)
	}
	return string(decoded), nil
}

// WriteTextFile writes content to path as UTF-8, creating parent
// directories as needed.
func WriteTextFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
