package backend

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"
)

// CipherFactory builds a cipher context of a general purpose cryptography library from a raw key.
type CipherFactory func(key []byte) (cipher.Block, error)

// externalBackend delegates every block to a library cipher context stored in the schedule.
// Library failures are reported as BackendFault and never retried.
type externalBackend struct {
	factory CipherFactory
}

// NewExternalBackend creates a backend on top of factory. A nil factory selects crypto/aes.
func NewExternalBackend(factory CipherFactory) aesecb.BlockBackend {
	if factory == nil {
		factory = aes.NewCipher
	}
	return &externalBackend{factory: factory}
}

func (b *externalBackend) Name() string {
	return aesecb.BackendExternal
}

func (b *externalBackend) Expand(key []byte, ks *aesecb.KeySchedule) (err error) {
	if err := expandInto(key, ks); err != nil {
		return err
	}

	defer b.recoverFault("cipher init", &err)

	block, err := b.factory(ks.Bytes()[:ks.Variant().KeySize()])
	if err != nil {
		return &aesecb.BackendFault{Backend: b.Name(), Op: "cipher init", Err: err}
	}
	if block.BlockSize() != aesecb.BlockSize {
		return &aesecb.BackendFault{
			Backend: b.Name(),
			Op:      "cipher init",
			Err:     fmt.Errorf("cipher block size is %d, want %d", block.BlockSize(), aesecb.BlockSize),
		}
	}
	ks.SetContext(block)
	return nil
}

func (b *externalBackend) EncryptBlock(ks *aesecb.KeySchedule, dst, src []byte) (err error) {
	block := ks.Context()
	if block == nil {
		return &aesecb.BackendFault{Backend: b.Name(), Op: "encrypt", Err: fmt.Errorf("schedule has no cipher context")}
	}

	defer b.recoverFault("encrypt", &err)

	block.Encrypt(dst[:aesecb.BlockSize], src[:aesecb.BlockSize])
	return nil
}

// recoverFault turns a panic inside the library into a BackendFault.
func (b *externalBackend) recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		*err = &aesecb.BackendFault{Backend: b.Name(), Op: op, Err: fmt.Errorf("library panic: %v", r)}
	}
}
