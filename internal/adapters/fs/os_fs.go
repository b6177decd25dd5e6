package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

type OSFileSystem struct {
	root string
}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// NewRootedFileSystem resolves relative paths against root instead of the
// working directory.
func NewRootedFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: root}
}

func (fs *OSFileSystem) resolve(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if fs.root == "" || filepath.IsAbs(expanded) {
		return expanded, nil
	}
	return filepath.Join(fs.root, expanded), nil
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	resolved, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(resolved)
}

func (fs *OSFileSystem) FileExists(path string) bool {
	resolved, err := fs.resolve(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(resolved)
	return err == nil
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	resolved, err := fs.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(resolved, perm)
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	resolved, err := fs.resolve(path)
	if err != nil {
		return err
	}
	return os.WriteFile(resolved, data, perm)
}
