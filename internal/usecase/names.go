package usecase

import (
	"github.com/pkg/errors"

	"github.com/3-lines-studio/bottletags/internal/core"
)

func loadNames(fsys FileSystem, path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("names file not configured")
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read names file %s", path)
	}

	return core.ParseNames(string(data)), nil
}
