// Package keyring persists credentials in the operating system keyring
// (Secret Service on Linux, Keychain on macOS, Credential Manager on
// Windows) for the built-in `gitcred helper` backend.
package keyring

import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/systmms/gitcred/internal/secure"
)

// ErrNotFound is returned by Get when nothing is stored for the URL scope.
var ErrNotFound = errors.New("no stored credential")

const defaultService = "gitcred"

// entry is the JSON blob kept under one keyring item.
type entry struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store saves one username/password pair per protocol://host scope.
type Store struct {
	service string
}

// New creates a store under the default keyring service name.
func New() *Store {
	return &Store{service: defaultService}
}

// account derives the keyring account name for a URL scope. A credential
// stored for https://example.com lives under "https://example.com"; when
// the protocol is unknown the bare host is used.
func account(protocol, host string) string {
	if protocol == "" {
		return host
	}
	return protocol + "://" + host
}

// Get retrieves the credential stored for the scope. The password comes
// back inside a secure buffer; the caller opens it only to write the reply
// and destroys it afterwards.
func (s *Store) Get(protocol, host string) (string, *secure.Buffer, error) {
	raw, err := keyring.Get(s.service, account(protocol, host))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, err
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		// An unreadable entry is treated as absent, matching the
		// helper contract that a broken answer is no answer.
		return "", nil, ErrNotFound
	}
	return e.Username, secure.NewBuffer([]byte(e.Password)), nil
}

// Put stores or replaces the credential for the scope.
func (s *Store) Put(protocol, host, username, password string) error {
	raw, err := json.Marshal(entry{Username: username, Password: password})
	if err != nil {
		return err
	}
	return keyring.Set(s.service, account(protocol, host), string(raw))
}

// Erase removes the credential for the scope. Erasing a scope with nothing
// stored is not an error.
func (s *Store) Erase(protocol, host string) error {
	err := keyring.Delete(s.service, account(protocol, host))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
