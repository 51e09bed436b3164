package backend

import (
	"crypto/aes"
	"errors"
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

// ErrNoHardwareAES is returned when the cpu backend is requested on a CPU without AES instructions.
var ErrNoHardwareAES = errors.New("cpu has no AES instructions")

// cpuBackend drives the instruction accelerated crypto/aes block. The schedule still carries the
// standard round keys; the first Nk words of the expansion are the raw key, which seeds the
// cipher context once per schedule.
type cpuBackend struct{}

// NewCPUBackend creates the instruction accelerated backend. It fails when the CPU lacks AES support.
func NewCPUBackend() (aesecb.BlockBackend, error) {
	if !SupportsHardwareAES() {
		return nil, ErrNoHardwareAES
	}
	return &cpuBackend{}, nil
}

func (b *cpuBackend) Name() string {
	return aesecb.BackendCPU
}

func (b *cpuBackend) Expand(key []byte, ks *aesecb.KeySchedule) error {
	if err := expandInto(key, ks); err != nil {
		return err
	}

	block, err := aes.NewCipher(ks.Bytes()[:ks.Variant().KeySize()])
	if err != nil {
		return fmt.Errorf("failed to create AES cipher: %w", err)
	}
	ks.SetContext(block)
	return nil
}

func (b *cpuBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) error {
	ks.Context().Encrypt(dst[:aesecb.BlockSize], src[:aesecb.BlockSize])
	return nil
}
