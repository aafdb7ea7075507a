// Package secure keeps discovered passwords encrypted in memory between
// the moment a store hands them out and the moment they are written to the
// reply stream.
package secure

import (
	"sync"

	"github.com/awnumar/memguard"
)

// Buffer holds a secret in a memguard enclave: encrypted at rest in
// memory, mlock-backed where the platform allows it.
type Buffer struct {
	enclave *memguard.Enclave

	mu        sync.RWMutex
	destroyed bool
}

// NewBuffer copies data into a protected memory region. The caller keeps
// ownership of the input slice and should zero it when possible.
//
// memguard cannot enclave zero bytes, so an empty secret is represented
// without an enclave and opens as an empty buffer.
func NewBuffer(data []byte) *Buffer {
	if len(data) == 0 {
		return &Buffer{}
	}
	return &Buffer{enclave: memguard.NewEnclave(data)}
}

// Open decrypts the secret into a locked buffer. The caller must call
// Destroy on the returned buffer once the plaintext has been used.
// An already-destroyed or empty Buffer opens as empty.
func (b *Buffer) Open() (*memguard.LockedBuffer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.destroyed || b.enclave == nil {
		return memguard.NewBufferFromBytes([]byte{}), nil
	}
	return b.enclave.Open()
}

// Destroy marks the buffer as unusable. The enclave's ciphertext needs no
// explicit wiping; this only guards against reuse. Idempotent.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed = true
}
