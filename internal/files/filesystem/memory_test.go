package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_OpenAndWalk(t *testing.T) {
	fs := NewMemoryFileSystem("/root")
	fs.AddFile("a/package.json", `{"name":"a"}`)
	fs.AddFile("b/nested/package.json", `{"name":"b"}`)

	dir, err := fs.Open("/root")
	require.NoError(t, err)
	assert.Equal(t, "/root", dir.Path())

	var paths []string
	err = dir.Walk(func(f File, walkErr error) error {
		require.NoError(t, walkErr)
		if !f.Info().IsDir() {
			paths = append(paths, f.Path())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/a/package.json", "/root/b/nested/package.json"}, paths)
}

func TestMemoryFileSystem_WalkOrderIsSorted(t *testing.T) {
	fs := NewMemoryFileSystem("/root")
	fs.AddFile("z.json", "z")
	fs.AddFile("a.json", "a")
	fs.AddFile("m/mid.json", "m")

	dir, err := fs.Open("/root")
	require.NoError(t, err)

	var names []string
	require.NoError(t, dir.Walk(func(f File, walkErr error) error {
		if !f.Info().IsDir() {
			names = append(names, f.Info().Name())
		}
		return nil
	}))
	assert.Equal(t, []string{"a.json", "mid.json", "z.json"}, names)
}

func TestMemoryFileSystem_ReadContent(t *testing.T) {
	fs := NewMemoryFileSystem("/root")
	fs.AddFile("pkg/package.json", `{"name":"pkg"}`)

	dir, err := fs.Open("/root")
	require.NoError(t, err)

	var content []byte
	require.NoError(t, dir.Walk(func(f File, walkErr error) error {
		if !f.Info().IsDir() && f.Info().Name() == "package.json" {
			var readErr error
			content, readErr = f.ReadContent()
			require.NoError(t, readErr)
			assert.Equal(t, "pkg/package.json", f.RelativePath())
		}
		return nil
	}))
	assert.Equal(t, `{"name":"pkg"}`, string(content))
}

func TestMemoryFileSystem_OpenMissingDirectory(t *testing.T) {
	fs := NewMemoryFileSystem("/root")

	dir, err := fs.Open("/elsewhere")
	assert.Error(t, err)
	assert.Nil(t, dir)
}

func TestMemoryFileSystem_OpenFileAsDirectory(t *testing.T) {
	fs := NewMemoryFileSystem("/root")
	fs.AddFile("file.json", "{}")

	dir, err := fs.Open("/root/file.json")
	assert.Error(t, err)
	assert.Nil(t, dir)
}

func TestMemoryFileSystem_WalkStopsOnCallbackError(t *testing.T) {
	fs := NewMemoryFileSystem("/root")
	fs.AddFile("a.json", "a")
	fs.AddFile("b.json", "b")

	dir, err := fs.Open("/root")
	require.NoError(t, err)

	visits := 0
	err = dir.Walk(func(f File, walkErr error) error {
		visits++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, visits)
}
