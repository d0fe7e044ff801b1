package blob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const filePerm = 0o644

// FS is a Store backed by the filesystem, the key being a file path. Missing parent
// directories are not created.
type FS struct{}

var _ Store = FS{}

func (FS) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, err)
		}

		return nil, err
	}

	return data, nil
}

func (FS) Write(key string, data []byte) error {
	return os.WriteFile(key, data, filePerm)
}
