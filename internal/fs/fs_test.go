package fs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0o755))

	fpath := filepath.Join(dir, "test.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	assert.Equal(t, fpath, f.Name())

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())
	assert.NoError(t, f.Close())

	entries, err := lfs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	newPath := filepath.Join(dir, "renamed.txt")
	assert.NoError(t, lfs.Rename(fpath, newPath))

	r, err := lfs.OpenFile(newPath, os.O_RDONLY, 0)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	require.NoError(t, r.Close())

	assert.NoError(t, lfs.Remove(newPath))
	_, err = lfs.OpenFile(newPath, os.O_RDONLY, 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFaultyFS_WriteLimit(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("faulty", Fault{FailAfterBytes: 5})

	f, err := ffs.OpenFile(filepath.Join(tmp, "faulty.txt"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = f.Write([]byte("!"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.NoError(t, f.Close())

	// Files that match no rule are not wrapped.
	g, err := ffs.OpenFile(filepath.Join(tmp, "plain.txt"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	_, err = g.Write([]byte("hello world"))
	assert.NoError(t, err)
	assert.NoError(t, g.Close())
}

func TestFaultyFS_SyncCloseRename(t *testing.T) {
	tmp := t.TempDir()
	custom := assert.AnError
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule(".tmp", Fault{FailAfterBytes: -1, FailOnSync: true})
	ffs.AddRule(".tmp-close", Fault{FailAfterBytes: -1, FailOnClose: true, Err: custom})

	f, err := ffs.OpenFile(filepath.Join(tmp, "a.tmp"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Sync(), ErrInjected)
	assert.NoError(t, f.Close())

	// The longest matching pattern wins.
	g, err := ffs.OpenFile(filepath.Join(tmp, "b.tmp-close"), os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	assert.NoError(t, g.Sync())
	assert.ErrorIs(t, g.Close(), custom)

	ffs.ClearRules()
	ffs.AddRule("a.tmp", Fault{FailAfterBytes: -1, FailOnRename: true})
	assert.ErrorIs(t, ffs.Rename(filepath.Join(tmp, "a.tmp"), filepath.Join(tmp, "a")), ErrInjected)
	assert.NoError(t, ffs.Rename(filepath.Join(tmp, "b.tmp-close"), filepath.Join(tmp, "b")))
}
