// Package filex holds small filesystem helpers used by the file-backed store.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const backupStampLayout = "20060102T150405"

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// BackupPath returns a path next to path that does not exist yet, of the form
// <path>.<stamp>.bak, falling back to <path>.<stamp>-N.bak.
func BackupPath(path string, now time.Time) (string, error) {
	stamp := now.Format(backupStampLayout)

	candidate := fmt.Sprintf("%s.%s.bak", path, stamp)
	for n := 1; ; n++ {
		ok, err := Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		if !ok {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%s-%d.bak", path, stamp, n)
	}
}
