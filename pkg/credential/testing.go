package credential

import (
	"os"
	"path/filepath"
	"testing"
)

// MapConfig is an in-memory Config for tests. Keys map directly to values;
// a missing key is a lookup miss.
type MapConfig map[string]string

// GetString implements Config.
func (m MapConfig) GetString(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// WriteHelperScript writes an executable shell script into dir and returns
// its absolute path, for configuring as a path-form helper in tests.
func WriteHelperScript(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write helper script %s: %v", path, err)
	}
	return path
}
