package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bindle/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash content digests for manifest entries.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Sum returns the hex XXHash64 digest of the given content.
func (h *Hasher) Sum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
