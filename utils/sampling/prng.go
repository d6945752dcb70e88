// Package sampling implements the sources of randomness consumed during
// share generation: a thread-safe cryptographically secure PRNG and a keyed,
// deterministic PRNG for parties that must derive identical random streams
// from a shared secret.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by the operating system's entropy source.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with cryptographically secure random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG securely and *deterministically* generates a sequence of random
// bytes from a key using the blake2b extendable-output function, so that
// different parties holding the same key derive the same sequence. A KeyedPRNG
// instantiated with key=nil produces a public, predictable sequence and must
// not be used to generate secret shares.
//
// The stream position is shared state: concurrent readers each observe an
// unpredictable interleaving of the sequence, so a deterministic replay
// requires a single reader.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG seeded with key, which may be at most
// 64 bytes long.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	prng := &KeyedPRNG{xof: xof}
	prng.key = append(prng.key, key...)
	return prng, nil
}

// Key returns a copy of the key used to seed the PRNG. This value can be used
// with [NewKeyedPRNG] to instantiate a new PRNG that will produce the same
// stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its sequence.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

const keySize = 32

// PRNGKey derives a key for a [KeyedPRNG] from secret material, so that
// parties holding the same secret can instantiate identical deterministic
// PRNGs without exposing the secret itself as the key.
func PRNGKey(secret []byte) []byte {
	hasher := blake3.New()
	hasher.Write(secret)
	sum := hasher.Sum(nil)
	return sum[:keySize]
}
