package gitconfig

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setConfigEnv injects configuration through the GIT_CONFIG_* environment
// scope, the same mechanism `git -c` uses under the hood. The machine's
// own scopes are pointed somewhere empty first.
func setConfigEnv(t *testing.T, pairs map[string]string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_COUNT", strconv.Itoa(len(pairs)))
	i := 0
	for k, v := range pairs {
		t.Setenv("GIT_CONFIG_KEY_"+strconv.Itoa(i), k)
		t.Setenv("GIT_CONFIG_VALUE_"+strconv.Itoa(i), v)
		i++
	}
}

func TestStoreGetString(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"credential.helper": "store",
	})

	s := Load("")
	v, ok := s.GetString("credential.helper")
	require.True(t, ok)
	assert.Equal(t, "store", v)
}

func TestStoreGetString_URLScopedKey(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"credential.https://example.com.username": "alice",
	})

	s := Load("")
	v, ok := s.GetString("credential.https://example.com.username")
	require.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestStoreGetString_Miss(t *testing.T) {
	setConfigEnv(t, nil)

	s := Load("")
	v, ok := s.GetString("credential.helper")
	assert.False(t, ok)
	assert.Empty(t, v)
}
