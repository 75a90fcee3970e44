// Package scratch allocates the per-run scratch directory used for
// autosave data. An allocation failure is not fatal: it only disables
// autosave-to-disk for the run, so the allocator degrades to an empty
// path instead of returning an error.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// DefaultPrefix is the directory name prefix for scratch directories.
const DefaultPrefix = "CardinalRemote"

// Allocate finds or creates a uniquely named, previously nonexistent
// directory under root. Candidate names embed a counter zero-padded to
// four digits, starting at 1; an existing path (file or directory, the
// check is deliberately relaxed) skips to the next counter value. The
// first nonexistent candidate is created along with any missing parents
// and the search stops there whether creation succeeds or not.
//
// Returns the empty string when no directory could be created. Root
// defaults to the platform temp directory when empty.
func Allocate(root, prefix string) string {
	if root == "" {
		root = os.TempDir()
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}

	for i := 1; ; i++ {
		candidate := filepath.Join(root, fmt.Sprintf("%s.%04d", prefix, i))

		if _, err := os.Stat(candidate); err == nil {
			continue
		}

		if err := os.MkdirAll(candidate, 0755); err != nil {
			logger.Debug("Scratch directory creation failed", logger.KeyPath, candidate, logger.KeyError, err)
			return ""
		}
		return candidate
	}
}

// Remove recursively deletes the scratch directory. A no-op for the
// empty sentinel.
func Remove(path string) error {
	if path == "" {
		return nil
	}
	return os.RemoveAll(path)
}
