// Package gitconfig adapts layered git configuration to the lookup
// interface the credential engine consults.
//
// Precedence across layers (system, global, local, worktree, environment)
// is the parser's responsibility and invisible to the engine: the engine
// only ever sees the winning value for a key, or a miss.
package gitconfig

import (
	gitcfg "github.com/gopasspw/gitconfig"
)

// Store is a read-only view over the ambient git configuration.
type Store struct {
	cfg *gitcfg.Configs
}

// Load reads all configuration scopes visible from workdir, including the
// GIT_CONFIG_* environment variables. An empty workdir skips the
// repository-local scopes.
func Load(workdir string) *Store {
	c := gitcfg.New()
	c.NoWrites = true
	c.LoadAll(workdir)
	return &Store{cfg: c}
}

// GetString implements credential.Config. Any kind of lookup failure is a
// miss; the engine falls through to its next candidate key.
func (s *Store) GetString(key string) (string, bool) {
	if !s.cfg.IsSet(key) {
		return "", false
	}
	return s.cfg.Get(key), true
}
