package uniuri

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// CryptoSource is the operating system's secure random number generator.
// It is safe for concurrent use.
var CryptoSource io.Reader = rand.Reader //nolint:gochecknoglobals

// ChaChaSource is a ChaCha20 keystream used as random byte source.
// The same key and nonce always produce the same bytes, which makes it useful for
// reproducible runs; NewSeededChaChaSource keys it from CryptoSource instead.
type ChaChaSource struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
}

// NewChaChaSource creates a keystream source from a 32 byte key and a 12 or 24 byte nonce.
func NewChaChaSource(key, nonce []byte) (*ChaChaSource, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20 cipher")
	}

	return &ChaChaSource{cipher: c}, nil
}

// NewSeededChaChaSource creates a keystream source keyed from CryptoSource.
func NewSeededChaChaSource() (*ChaChaSource, error) {
	seed := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(CryptoSource, seed); err != nil {
		return nil, errors.Wrapf(ErrEntropyUnavailable, "seed chacha20 source: %v", err)
	}

	return NewChaChaSource(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
}

// Read fills p with keystream bytes. It fails once the keystream is exhausted.
func (s *ChaChaSource) Read(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// chacha20 panics on counter overflow
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, errors.Errorf("chacha20 keystream exhausted: %v", r)
		}
	}()

	clear(p)
	s.cipher.XORKeyStream(p, p)

	return len(p), nil
}
