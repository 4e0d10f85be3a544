package draw

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// Source supplies the engine's entropy: uniform samples in [0, 100).
type Source interface {
	Sample() (float64, error)
}

// CSPRNG is the production Source. It uses AES-CTR under the hood,
// seeded once from crypto/rand.
type CSPRNG struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// NewCSPRNG initializes an AES-CTR generator seeded from crypto/rand.
func NewCSPRNG() (*CSPRNG, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("draw: failed to get seed from crypto/rand: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("draw: aes.NewCipher failed: %w", err)
	}

	var iv [16]byte
	if _, err := io.ReadFull(rand.Reader, iv[:]); err != nil {
		return nil, fmt.Errorf("draw: failed to get IV from crypto/rand: %w", err)
	}

	return &CSPRNG{stream: cipher.NewCTR(block, iv[:])}, nil
}

// Read fills buf with AES-CTR keystream output.
func (c *CSPRNG) Read(buf []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// buf is zeroed by the caller, so XORing leaves pure keystream.
	c.stream.XORKeyStream(buf, buf)
	return len(buf), nil
}

// Uint32 returns a single 32-bit random word.
func (c *CSPRNG) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := c.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Sample maps one 32-bit word onto [0, 100).
func (c *CSPRNG) Sample() (float64, error) {
	u, err := c.Uint32()
	if err != nil {
		return 0, err
	}
	return float64(u) / (1 << 32) * 100, nil
}
