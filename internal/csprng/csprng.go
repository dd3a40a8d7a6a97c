// Package csprng provides the sole source of secret randomness used by the
// voting core. It must remain fork-safe: every key and nonce the core
// samples ultimately traces back to this reader.
package csprng

import "crypto/rand"

// Generator is a cryptographically secure random source, safe to share
// across goroutines and safe across process forks since it defers to the
// OS-provided crypto/rand reader on every call.
type Generator struct{}

// Read implements io.Reader. It fills buffer to its full length as long as
// no error occurred.
func (Generator) Read(buffer []byte) (int, error) {
	return rand.Read(buffer)
}
