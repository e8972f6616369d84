package session

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// The session flag is the only state that survives a restart: a marker file
// whose presence means the user is logged in. Its content (the login time) is
// informational only.

// MarkAuthenticated creates the auth marker file at path.
func MarkAuthenticated(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	content := time.Now().UTC().Format(time.RFC3339) + "\n"
	return os.WriteFile(path, []byte(content), 0600)
}

// ClearAuthenticated removes the auth marker file. Missing file is fine.
func ClearAuthenticated(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// IsAuthenticated reports whether the auth marker file exists.
func IsAuthenticated(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
