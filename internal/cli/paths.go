package cli

import (
	"os"
	"path/filepath"
)

// cacheDir returns the atlas cache directory under the user cache dir
// (e.g. ~/.cache/hexatlas on Linux).
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
