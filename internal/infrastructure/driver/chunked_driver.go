package driver

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

type chunkedDriver struct {
	backend       aesecb.StreamBackend
	maxChunkBytes int
}

// NewChunkedDriver creates a driver that feeds a streaming backend full chunks of maxChunkBytes
// followed by one call with whatever is left.
func NewChunkedDriver(backend aesecb.StreamBackend, maxChunkBytes int) (aesecb.Driver, error) {
	if maxChunkBytes <= 0 || maxChunkBytes%aesecb.BlockSize != 0 {
		return nil, fmt.Errorf("max chunk bytes must be a positive multiple of %d, got %d", aesecb.BlockSize, maxChunkBytes)
	}
	if limit := backend.MaxChunkBytes(); limit > 0 && maxChunkBytes > limit {
		return nil, fmt.Errorf("max chunk bytes %d exceeds the backend limit of %d", maxChunkBytes, limit)
	}
	return &chunkedDriver{backend: backend, maxChunkBytes: maxChunkBytes}, nil
}

func (d *chunkedDriver) Strategy() string {
	return aesecb.StrategyChunked
}

func (d *chunkedDriver) EncryptECB(ks *aesecb.KeySchedule, dst, src []byte) error {
	aesecb.CheckBuffers(d.Strategy(), dst, src)

	// The remainder call always carries between one block and a full chunk.
	off := 0
	for ; len(src)-off > d.maxChunkBytes; off += d.maxChunkBytes {
		end := off + d.maxChunkBytes
		if err := d.backend.EncryptStream(ks, dst[off:end], src[off:end]); err != nil {
			return fmt.Errorf("chunk at offset %d: %w", off, err)
		}
	}
	if off < len(src) {
		if err := d.backend.EncryptStream(ks, dst[off:len(src)], src[off:]); err != nil {
			return fmt.Errorf("remainder at offset %d: %w", off, err)
		}
	}
	return nil
}
