// Package fileutil provides the shared file-handling helpers used across
// components: tolerant JSON load/save with atomic writes, directory
// utilities, pattern-based file discovery, text I/O with a legacy encoding
// fallback, and project-root detection.
package fileutil

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ReadJSON decodes the JSON file at path into out.
func ReadJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse json %s: %w", path, err)
	}
	return nil
}

// TryReadJSON decodes the JSON file at path into out, reporting success. On
// a missing or invalid file it logs a warning, leaves out untouched, and
// returns false so callers can fall back to their default value.
func TryReadJSON(path string, out any) bool {
	if err := ReadJSON(path, out); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("json load failed, using default")
		return false
	}
	return true
}

// WriteJSON marshals v with two-space indentation and writes it to path,
// creating parent directories as needed. The write goes through a temporary
// file and rename so readers never observe a partial file.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json for %s: %w", path, err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

// EnsureDir guarantees that path exists and is a directory.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return os.MkdirAll(path, 0o755)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FindFiles returns the files under dir whose base name matches pattern
// (filepath.Match syntax). With recursive set, subdirectories are walked;
// otherwise only direct entries are considered. A missing directory yields
// an empty result rather than an error.
func FindFiles(dir, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var matches []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ok, err := filepath.Match(pattern, e.Name())
			if err != nil {
				return nil, err
			}
			if ok {
				matches = append(matches, filepath.Join(dir, e.Name()))
			}
		}
		return matches, nil
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// CopyFile streams src to dst. An existing dst is refused unless overwrite
// is set. Parent directories of dst are created as needed.
func CopyFile(src, dst string, overwrite bool) error {
	if !overwrite && Exists(dst) {
		return fmt.Errorf("destination %s already exists", dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// ProjectRoot walks upward from the current working directory looking for a
// marker file or directory. With no markers given it looks for .git, go.mod,
// and package.json.
func ProjectRoot(markers ...string) (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return ProjectRootFrom(cwd, markers...)
}

// ProjectRootFrom is ProjectRoot starting at an explicit directory.
func ProjectRootFrom(start string, markers ...string) (string, bool) {
	if len(markers) == 0 {
		markers = []string{".git", "go.mod", "package.json"}
	}
	dir := start
	for {
		for _, marker := range markers {
			if Exists(filepath.Join(dir, marker)) {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
