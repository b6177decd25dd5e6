package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
	MkdirAll(path string, perm iofs.FileMode) error
	WriteFile(path string, data []byte, perm iofs.FileMode) error
}
