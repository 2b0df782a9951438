//go:build !android

package utils

import "testing"

func TestStorageDesktop(t *testing.T) {
	if err := EnsureStorageDir("hoppy"); err != nil {
		t.Errorf("EnsureStorageDir() error = %v", err)
	}
	path, err := StoragePath("hoppy")
	if err != nil || path != "" {
		t.Errorf("StoragePath() = %q, %v; want empty path on desktop", path, err)
	}
}
