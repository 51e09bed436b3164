package driver

import (
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

type singleBlockDriver struct {
	backend aesecb.BlockBackend
}

// NewSingleBlockDriver creates a driver that hands the backend one block per call, in order.
func NewSingleBlockDriver(backend aesecb.BlockBackend) aesecb.Driver {
	return &singleBlockDriver{backend: backend}
}

func (d *singleBlockDriver) Strategy() string {
	return aesecb.StrategySingleBlock
}

func (d *singleBlockDriver) EncryptECB(ks *aesecb.KeySchedule, dst, src []byte) error {
	aesecb.CheckBuffers(d.Strategy(), dst, src)
	return encryptBlocks(d.backend, ks, dst, src, 0)
}

// encryptBlocks encrypts src block by block; first is the index of src's first block in the buffer.
func encryptBlocks(backend aesecb.BlockBackend, ks *aesecb.KeySchedule, dst, src []byte, first int) error {
	for off := 0; off < len(src); off += aesecb.BlockSize {
		end := off + aesecb.BlockSize
		if err := backend.EncryptBlock(ks, dst[off:end], src[off:end]); err != nil {
			return fmt.Errorf("block %d: %w", first+off/aesecb.BlockSize, err)
		}
	}
	return nil
}
