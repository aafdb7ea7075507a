package commands

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/gitcred/internal/logging"
)

func testOptions() *Options {
	return &Options{Logger: logging.New(false, true)}
}

// isolateGitConfig keeps the test away from the machine's real git
// configuration scopes.
func isolateGitConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_COUNT", "0")
}

// setHelperEnv configures a credential.helper through the GIT_CONFIG_*
// environment scope so the fill command picks it up without touching any
// real config file.
func setHelperEnv(t *testing.T, helper string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh on PATH")
	}
	isolateGitConfig(t)
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "credential.helper")
	t.Setenv("GIT_CONFIG_VALUE_0", helper)
}

func TestFillCommand(t *testing.T) {
	setHelperEnv(t, "!f() { echo username=a; echo password=b; }; f")

	cmd := NewFillCommand(testOptions())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"https://example.com/org/repo.git"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "username=a\npassword=b\n", out.String())
}

func TestFillCommand_SeededUsername(t *testing.T) {
	setHelperEnv(t, "!f() { echo password=b; }; f")

	cmd := NewFillCommand(testOptions())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--username", "alice", "https://example.com/org/repo.git"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "username=alice\npassword=b\n", out.String())
}

func TestFillCommand_NotFound(t *testing.T) {
	isolateGitConfig(t)

	cmd := NewFillCommand(testOptions())
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"https://nothing.example/repo.git"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No credentials found")
}

func TestFillCommand_RequiresURL(t *testing.T) {
	cmd := NewFillCommand(testOptions())
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
