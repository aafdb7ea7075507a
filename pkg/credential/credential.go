// Package credential discovers authentication credentials for remote URLs
// by driving external credential helper programs as described in
// gitcredentials(7).
//
// Discovery starts from a URL, consults layered git configuration for a
// username and an ordered list of helper commands, runs each helper in turn
// with the line protocol on its standard streams, and merges the replies
// into a username/password pair. Helpers that cannot be spawned, exit
// non-zero, or misbehave on their streams are treated as having no answer;
// their failures are never surfaced. A discovery that finds nothing is a
// normal outcome, not an error.
//
// Helper commands are executed through a POSIX shell (`sh -c`). The shell
// is a hard platform requirement: without one on PATH every helper
// invocation fails, which by the silent-failure contract degrades to "no
// credential found".
package credential

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FromHelper when no configured helper (and no
// configuration entry) could supply both a username and a password. It is
// an absence of data, not a failure report: callers must not distinguish a
// broken helper from a user with nothing stored.
var ErrNotFound = errors.New("failed to acquire username/password from local configuration")

// Cred is an opaque credential handed to a transport layer. The concrete
// types below are plain data carriers; this package never interprets them
// after construction.
type Cred interface {
	// Type returns a stable identifier for the credential kind.
	Type() string
}

// UserPass is a plaintext username/password credential, the type produced
// by helper discovery.
type UserPass struct {
	Username string
	Password string
}

// Type implements Cred.
func (UserPass) Type() string { return "userpass" }

// DefaultCred is a "default" credential for Negotiate mechanisms such as
// NTLM or Kerberos, where the ambient identity is used and no secret
// material is carried.
type DefaultCred struct{}

// Type implements Cred.
func (DefaultCred) Type() string { return "default" }

// SSHAgentCred authenticates the given username by querying an ssh-agent.
type SSHAgentCred struct {
	Username string
}

// Type implements Cred.
func (SSHAgentCred) Type() string { return "ssh-agent" }

// SSHKeyCred is a passphrase-protected SSH key credential. PublicKey and
// Passphrase may be empty.
type SSHKeyCred struct {
	Username   string
	PublicKey  string
	PrivateKey string
	Passphrase string
}

// Type implements Cred.
func (SSHKeyCred) Type() string { return "ssh-key" }

// FromHelper runs helper discovery for url against cfg and wraps the result
// as a UserPass credential. The username, when non-empty, pre-seeds the
// discovery and takes precedence over any configured value.
//
// It returns ErrNotFound when discovery completes without a full pair. Any
// other error indicates caller misuse (a nil configuration handle), never an
// environmental condition.
func FromHelper(ctx context.Context, cfg Config, url string, username string) (*UserPass, error) {
	if cfg == nil {
		return nil, errors.New("credential: nil config")
	}
	h := NewHelper(url)
	if username != "" {
		h.SetUsername(username)
	}
	h.FromConfig(cfg)
	u, p, ok := h.Execute(ctx)
	if !ok {
		return nil, ErrNotFound
	}
	return &UserPass{Username: u, Password: p}, nil
}
