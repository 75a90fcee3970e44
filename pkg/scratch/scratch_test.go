package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSequence(t *testing.T) {
	root := t.TempDir()

	var paths []string
	for i := 1; i <= 3; i++ {
		p := Allocate(root, "CardinalRemote")
		require.NotEmpty(t, p)
		paths = append(paths, p)

		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	assert.Equal(t, filepath.Join(root, "CardinalRemote.0001"), paths[0])
	assert.Equal(t, filepath.Join(root, "CardinalRemote.0002"), paths[1])
	assert.Equal(t, filepath.Join(root, "CardinalRemote.0003"), paths[2])
}

func TestAllocateSkipsExisting(t *testing.T) {
	root := t.TempDir()

	// Pre-create the first two candidates, one as a plain file. The
	// existence check is relaxed: a file collision skips the candidate
	// the same way a directory does.
	require.NoError(t, os.Mkdir(filepath.Join(root, "CardinalRemote.0001"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "CardinalRemote.0002"), []byte("x"), 0644))

	p := Allocate(root, "CardinalRemote")
	assert.Equal(t, filepath.Join(root, "CardinalRemote.0003"), p)
}

func TestAllocateCreateFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("read-only directory permissions are not enforced here")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0555))
	t.Cleanup(func() { _ = os.Chmod(root, 0755) })

	p := Allocate(root, "CardinalRemote")
	assert.Empty(t, p)
}

func TestAllocateDefaults(t *testing.T) {
	// Default root is the platform temp dir; clean up whatever we claim.
	p := Allocate("", "")
	if p == "" {
		t.Skip("platform temp directory not writable")
	}
	t.Cleanup(func() { _ = Remove(p) })

	assert.Contains(t, p, DefaultPrefix)
	assert.Contains(t, p, os.TempDir())
}

func TestRemove(t *testing.T) {
	t.Run("recursive delete", func(t *testing.T) {
		root := t.TempDir()
		p := Allocate(root, "CardinalRemote")
		require.NotEmpty(t, p)

		require.NoError(t, os.WriteFile(filepath.Join(p, "autosave.vcv"), []byte("{}"), 0644))
		require.NoError(t, Remove(p))

		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty sentinel is a no-op", func(t *testing.T) {
		assert.NoError(t, Remove(""))
	})
}

func TestAllocateManyDistinct(t *testing.T) {
	root := t.TempDir()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		p := Allocate(root, "CardinalRemote")
		require.NotEmpty(t, p)
		require.False(t, seen[p], fmt.Sprintf("duplicate path %s", p))
		seen[p] = true
	}
}
