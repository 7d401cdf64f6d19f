package glob

import (
	"os"
	"path"

	"github.com/spf13/afero"
)

// fileSystem is the filesystem surface a walk needs. It wraps an afero.Fs
// so the same traversal runs against the OS filesystem in production and
// an in-memory tree in tests.
type fileSystem struct {
	fs   afero.Fs
	home string // "" means ask the OS
}

func newOSFileSystem() *fileSystem {
	return &fileSystem{fs: afero.NewOsFs()}
}

// ListDir returns the entry names of dir in whatever order the backing
// filesystem reports them — no sorting is imposed. Any error (missing
// path, unreadable directory, dir naming a plain file) is returned to the
// caller, which treats it as "nothing to list".
func (f *fileSystem) ListDir(dir string) ([]string, error) {
	d, err := f.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.Readdirnames(-1)
}

// Exists reports whether p names an existing file or directory.
func (f *fileSystem) Exists(p string) bool {
	ok, err := afero.Exists(f.fs, p)
	return err == nil && ok
}

// IsDir reports whether p names an existing directory.
func (f *fileSystem) IsDir(p string) bool {
	ok, err := afero.IsDir(f.fs, p)
	return err == nil && ok
}

// Home returns the directory a leading "~" expands to.
func (f *fileSystem) Home() (string, error) {
	if f.home != "" {
		return f.home, nil
	}
	return os.UserHomeDir()
}

// Canonicalize resolves "." and ".." components lexically, without
// consulting the filesystem. Only the match predicate uses it —
// enumeration never rewrites the paths it emits.
func (f *fileSystem) Canonicalize(p string) string {
	return path.Clean(p)
}
