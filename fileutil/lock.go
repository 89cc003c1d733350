package fileutil

import (
	"fmt"

	"github.com/gofrs/flock"
)

// WriteJSONLocked is WriteJSON guarded by a sidecar advisory lock, for JSON
// files shared between processes (caches, small state files). The lock file
// lives next to the target as <path>.lock and is held for the duration of
// the write.
func WriteJSONLocked(path string, v any) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	return WriteJSON(path, v)
}
