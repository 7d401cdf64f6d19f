package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	fsys := &fileSystem{fs: memFS(t, "/d/a", "/d/b", "/d/sub/c")}

	names, err := fsys.ListDir("/d")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "sub"}, names)

	_, err = fsys.ListDir("/missing")
	assert.Error(t, err)
}

func TestExistsAndIsDir(t *testing.T) {
	fsys := &fileSystem{fs: memFS(t, "/d/file", "/d/sub/")}

	assert.True(t, fsys.Exists("/d/file"))
	assert.True(t, fsys.Exists("/d/sub"))
	assert.False(t, fsys.Exists("/d/ghost"))

	assert.True(t, fsys.IsDir("/d/sub"))
	assert.False(t, fsys.IsDir("/d/file"))
	assert.False(t, fsys.IsDir("/d/ghost"))
}

func TestCanonicalize(t *testing.T) {
	fsys := newOSFileSystem()

	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/../c", "/a/c"},
		{"/a/./b", "/a/b"},
		{"a//b/", "a/b"},
		{".", "."},
		{"..", ".."},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fsys.Canonicalize(tc.in), "Canonicalize(%q)", tc.in)
	}
}

func TestHomeOverride(t *testing.T) {
	fsys := &fileSystem{home: "/custom/home"}

	home, err := fsys.Home()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", home)
}
