package backend

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

// acceleratorBackend models a streaming AES accelerator. The device takes the standard round keys
// and a run of blocks per call; when maxChunkBytes is set it refuses longer runs.
type acceleratorBackend struct {
	maxChunkBytes int
}

// NewAcceleratorBackend creates a streaming backend. maxChunkBytes is the per call cap in bytes:
// a positive multiple of the block size, or 0 when the device chunks internally.
func NewAcceleratorBackend(maxChunkBytes int) (aesecb.StreamBackend, error) {
	if maxChunkBytes < 0 || maxChunkBytes%aesecb.BlockSize != 0 {
		return nil, fmt.Errorf("max chunk bytes must be a non-negative multiple of %d, got %d", aesecb.BlockSize, maxChunkBytes)
	}
	return &acceleratorBackend{maxChunkBytes: maxChunkBytes}, nil
}

func (b *acceleratorBackend) Name() string {
	return aesecb.BackendHardware
}

func (b *acceleratorBackend) MaxChunkBytes() int {
	return b.maxChunkBytes
}

func (b *acceleratorBackend) Expand(key []byte, ks *aesecb.KeySchedule) error {
	return expandInto(key, ks)
}

func (b *acceleratorBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	return b.EncryptStream(ks, dst[:aesecb.BlockSize], src[:aesecb.BlockSize])
}

func (b *acceleratorBackend) EncryptStream(ks *aesecb.KeySchedule, dst, src []byte) error {
	if len(src) == 0 || len(src)%aesecb.BlockSize != 0 {
		return fmt.Errorf("accelerator call of %d bytes is not a positive multiple of %d", len(src), aesecb.BlockSize)
	}
	if b.maxChunkBytes > 0 && len(src) > b.maxChunkBytes {
		return fmt.Errorf("accelerator call of %d bytes: %w (%d)", len(src), aesecb.ErrChunkTooLarge, b.maxChunkBytes)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("accelerator output of %d bytes is shorter than input of %d", len(dst), len(src))
	}

	w := ks.Bytes()
	for off := 0; off < len(src); off += aesecb.BlockSize {
		encryptBlock(w, dst[off:off+aesecb.BlockSize], src[off:off+aesecb.BlockSize])
	}
	return nil
}
